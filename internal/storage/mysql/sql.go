package mysql

const destinationCols = `
  d.id, d.name, d.type, d.image_url, d.property_url, d.notes,
  d.airport_code, d.distance_from_airport_miles, d.drive_time_from_airport_min,
  d.avg_high_temp_f, d.avg_low_temp_f, d.weather_summary,
  d.nightly_cost_total_usd, d.nightly_cost_per_person_usd,
  d.distance_from_houston_miles, d.flight_duration_hours,
  d.distance_from_boston_miles, d.flight_duration_from_boston_hours,
  d.capacity, d.price_range, d.is_all_inclusive,
  d.created_at, d.updated_at`

const insertDestinationSQL = `
INSERT INTO destinations
  (id, name, type, image_url, property_url, notes,
   airport_code, distance_from_airport_miles, drive_time_from_airport_min,
   avg_high_temp_f, avg_low_temp_f, weather_summary,
   nightly_cost_total_usd, nightly_cost_per_person_usd,
   distance_from_houston_miles, flight_duration_hours,
   distance_from_boston_miles, flight_duration_from_boston_hours,
   capacity, price_range, is_all_inclusive,
   created_at, updated_at)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

// Full replacement; id and created_at are kept.
const updateDestinationSQL = `
UPDATE destinations SET
  name = ?, type = ?, image_url = ?, property_url = ?, notes = ?,
  airport_code = ?, distance_from_airport_miles = ?, drive_time_from_airport_min = ?,
  avg_high_temp_f = ?, avg_low_temp_f = ?, weather_summary = ?,
  nightly_cost_total_usd = ?, nightly_cost_per_person_usd = ?,
  distance_from_houston_miles = ?, flight_duration_hours = ?,
  distance_from_boston_miles = ?, flight_duration_from_boston_hours = ?,
  capacity = ?, price_range = ?, is_all_inclusive = ?,
  updated_at = ?
WHERE id = ?
`

const listDestinationsSQL = `SELECT` + destinationCols + `
FROM destinations d
ORDER BY d.created_at DESC, d.id DESC`

const getDestinationSQL = `SELECT` + destinationCols + `
FROM destinations d
WHERE d.id = ?`

// Counts are computed per row on every read; there is no stored counter.
const aggregateCols = `,
  (SELECT COUNT(*) FROM votes v WHERE v.destination_id = d.id)    AS vote_count,
  (SELECT COUNT(*) FROM comments c WHERE c.destination_id = d.id) AS comment_count,
  EXISTS (SELECT 1 FROM votes v2 WHERE v2.destination_id = d.id AND v2.voter_id = ?) AS has_voted`

const listDestinationViewsSQL = `SELECT` + destinationCols + aggregateCols + `
FROM destinations d
ORDER BY d.created_at DESC, d.id DESC`

const getDestinationViewSQL = `SELECT` + destinationCols + aggregateCols + `
FROM destinations d
WHERE d.id = ?`

// -----------------------------------------------------------------------------
// VOTES
// -----------------------------------------------------------------------------

const findVoteSQL = `
SELECT id, destination_id, voter_id, created_at
FROM votes
WHERE destination_id = ? AND voter_id = ?`

const insertVoteSQL = `
INSERT INTO votes (destination_id, voter_id, created_at)
VALUES (?, ?, CURRENT_TIMESTAMP(3))`

// -----------------------------------------------------------------------------
// COMMENTS
// -----------------------------------------------------------------------------

const commentCols = `id, destination_id, content, author_name, created_at, updated_at`

// ids are time-ordered UUIDs, so id DESC breaks created_at ties by recency.
const listCommentsSQL = `
SELECT ` + commentCols + `
FROM comments
WHERE destination_id = ?
ORDER BY created_at DESC, id DESC`

const getCommentSQL = `
SELECT ` + commentCols + `
FROM comments
WHERE id = ?`

const insertCommentSQL = `
INSERT INTO comments (` + commentCols + `)
VALUES (?, ?, ?, ?, ?, ?)`
