package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"tripvote/internal/domain"
)

const (
	errDupEntry     = 1062
	errNoSuchTable  = 1146
	errNoReferenced = 1452
)

func valStr(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}
func valInt(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}
func valF64(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}
func valBool(p *bool) any {
	if p == nil {
		return nil
	}
	return *p
}
func valPrice(p *domain.PriceRange) any {
	if p == nil {
		return nil
	}
	return string(*p)
}

// mapErr translates driver errors into domain kinds, keeping the cause.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		switch me.Number {
		case errDupEntry:
			return fmt.Errorf("%w: %v", domain.ErrConflict, err)
		case errNoSuchTable:
			return fmt.Errorf("%w: %v", domain.ErrSchemaUnavailable, err)
		case errNoReferenced:
			return fmt.Errorf("%w: %v", domain.ErrNotFound, err)
		}
	}
	return err
}

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

// ---- destinations ----

func destinationArgs(d domain.Destination) []any {
	return []any{
		d.Name,
		string(d.Type),
		valStr(d.ImageURL),
		valStr(d.PropertyURL),
		valStr(d.Notes),
		valStr(d.AirportCode),
		valF64(d.DistanceFromAirportMiles),
		valInt(d.DriveTimeFromAirportMin),
		valF64(d.AvgHighTempF),
		valF64(d.AvgLowTempF),
		valStr(d.WeatherSummary),
		valF64(d.NightlyCostTotalUsd),
		valF64(d.NightlyCostPerPersonUsd),
		valF64(d.DistanceFromHoustonMiles),
		valF64(d.FlightDurationHours),
		valF64(d.DistanceFromBostonMiles),
		valF64(d.FlightDurationFromBostonHours),
		valInt(d.Capacity),
		valPrice(d.PriceRange),
		valBool(d.IsAllInclusive),
	}
}

func (r *Repo) CreateDestination(ctx context.Context, d domain.Destination) error {
	args := append([]any{d.ID}, destinationArgs(d)...)
	args = append(args, d.CreatedAt, d.UpdatedAt)
	_, err := r.db.ExecContext(ctx, insertDestinationSQL, args...)
	return mapErr(err)
}

func (r *Repo) UpdateDestination(ctx context.Context, d domain.Destination) error {
	args := append(destinationArgs(d), d.UpdatedAt, d.ID)
	res, err := r.db.ExecContext(ctx, updateDestinationSQL, args...)
	if err != nil {
		return mapErr(err)
	}
	// MySQL reports 0 affected rows for a no-op update, so confirm the row.
	if n, _ := res.RowsAffected(); n == 0 {
		ok, err := r.DestinationExists(ctx, d.ID)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrNotFound
		}
	}
	return nil
}

func (r *Repo) DeleteDestination(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM destinations WHERE id = ?`, id)
	if err != nil {
		return mapErr(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *Repo) DestinationExists(ctx context.Context, id string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, `SELECT 1 FROM destinations WHERE id = ? LIMIT 1`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, mapErr(err)
	}
	return true, nil
}

func (r *Repo) GetDestination(ctx context.Context, id string) (domain.Destination, error) {
	var d domain.Destination
	if err := scanDestination(r.db.QueryRowContext(ctx, getDestinationSQL, id), &d); err != nil {
		return domain.Destination{}, mapErr(err)
	}
	return d, nil
}

func (r *Repo) ListDestinations(ctx context.Context) ([]domain.Destination, error) {
	rows, err := r.db.QueryContext(ctx, listDestinationsSQL)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	out := []domain.Destination{}
	for rows.Next() {
		var d domain.Destination
		if err := scanDestination(rows, &d); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, mapErr(rows.Err())
}

func (r *Repo) ListDestinationViews(ctx context.Context, voterID string) ([]domain.DestinationView, error) {
	rows, err := r.db.QueryContext(ctx, listDestinationViewsSQL, voterID)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	out := []domain.DestinationView{}
	for rows.Next() {
		var v domain.DestinationView
		if err := scanDestination(rows, &v.Destination, &v.VoteCount, &v.CommentCount, &v.HasVoted); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, mapErr(rows.Err())
}

func (r *Repo) GetDestinationView(ctx context.Context, id, voterID string) (domain.DestinationView, error) {
	var v domain.DestinationView
	row := r.db.QueryRowContext(ctx, getDestinationViewSQL, voterID, id)
	if err := scanDestination(row, &v.Destination, &v.VoteCount, &v.CommentCount, &v.HasVoted); err != nil {
		return domain.DestinationView{}, mapErr(err)
	}
	return v, nil
}

type scanner interface{ Scan(dest ...any) error }

// scanDestination reads destinationCols, then any extra trailing columns.
func scanDestination(s scanner, d *domain.Destination, extra ...any) error {
	var (
		imageURL, propertyURL, notes           sql.NullString
		airport, weather, priceRange           sql.NullString
		distAirport, high, low                 sql.NullFloat64
		costTotal, costPP                      sql.NullFloat64
		distHouston, flightH, distBos, flightB sql.NullFloat64
		driveMin, capacity                     sql.NullInt64
		allInclusive                           sql.NullBool
		typ                                    string
	)
	dest := []any{
		&d.ID, &d.Name, &typ, &imageURL, &propertyURL, &notes,
		&airport, &distAirport, &driveMin,
		&high, &low, &weather,
		&costTotal, &costPP,
		&distHouston, &flightH,
		&distBos, &flightB,
		&capacity, &priceRange, &allInclusive,
		&d.CreatedAt, &d.UpdatedAt,
	}
	if err := s.Scan(append(dest, extra...)...); err != nil {
		return err
	}

	d.Type = domain.DestinationType(typ)
	d.ImageURL = nullStr(imageURL)
	d.PropertyURL = nullStr(propertyURL)
	d.Notes = nullStr(notes)
	d.AirportCode = nullStr(airport)
	d.DistanceFromAirportMiles = nullF64(distAirport)
	d.DriveTimeFromAirportMin = nullInt(driveMin)
	d.AvgHighTempF = nullF64(high)
	d.AvgLowTempF = nullF64(low)
	d.WeatherSummary = nullStr(weather)
	d.NightlyCostTotalUsd = nullF64(costTotal)
	d.NightlyCostPerPersonUsd = nullF64(costPP)
	d.DistanceFromHoustonMiles = nullF64(distHouston)
	d.FlightDurationHours = nullF64(flightH)
	d.DistanceFromBostonMiles = nullF64(distBos)
	d.FlightDurationFromBostonHours = nullF64(flightB)
	d.Capacity = nullInt(capacity)
	if priceRange.Valid {
		p := domain.PriceRange(priceRange.String)
		d.PriceRange = &p
	}
	if allInclusive.Valid {
		b := allInclusive.Bool
		d.IsAllInclusive = &b
	}
	return nil
}

func nullStr(n sql.NullString) *string {
	if !n.Valid {
		return nil
	}
	s := n.String
	return &s
}

func nullF64(n sql.NullFloat64) *float64 {
	if !n.Valid {
		return nil
	}
	f := n.Float64
	return &f
}

func nullInt(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	i := int(n.Int64)
	return &i
}

// ---- votes ----

func (r *Repo) FindVote(ctx context.Context, destinationID, voterID string) (domain.Vote, error) {
	var v domain.Vote
	err := r.db.QueryRowContext(ctx, findVoteSQL, destinationID, voterID).
		Scan(&v.ID, &v.DestinationID, &v.VoterID, &v.CreatedAt)
	if err != nil {
		return domain.Vote{}, mapErr(err)
	}
	return v, nil
}

func (r *Repo) InsertVote(ctx context.Context, destinationID, voterID string) error {
	_, err := r.db.ExecContext(ctx, insertVoteSQL, destinationID, voterID)
	return mapErr(err)
}

func (r *Repo) DeleteVote(ctx context.Context, destinationID, voterID string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM votes WHERE destination_id = ? AND voter_id = ?`, destinationID, voterID)
	if err != nil {
		return false, mapErr(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *Repo) CountVotes(ctx context.Context, destinationID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM votes WHERE destination_id = ?`, destinationID).Scan(&n)
	return n, mapErr(err)
}

// ---- comments ----

func scanComment(s scanner, c *domain.Comment) error {
	return s.Scan(&c.ID, &c.DestinationID, &c.Content, &c.AuthorName, &c.CreatedAt, &c.UpdatedAt)
}

func (r *Repo) ListComments(ctx context.Context, destinationID string) ([]domain.Comment, error) {
	rows, err := r.db.QueryContext(ctx, listCommentsSQL, destinationID)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	out := []domain.Comment{}
	for rows.Next() {
		var c domain.Comment
		if err := scanComment(rows, &c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, mapErr(rows.Err())
}

func (r *Repo) GetComment(ctx context.Context, id string) (domain.Comment, error) {
	var c domain.Comment
	if err := scanComment(r.db.QueryRowContext(ctx, getCommentSQL, id), &c); err != nil {
		return domain.Comment{}, mapErr(err)
	}
	return c, nil
}

func (r *Repo) InsertComment(ctx context.Context, c domain.Comment) error {
	_, err := r.db.ExecContext(ctx, insertCommentSQL,
		c.ID, c.DestinationID, c.Content, c.AuthorName, c.CreatedAt, c.UpdatedAt)
	return mapErr(err)
}

func (r *Repo) UpdateComment(ctx context.Context, c domain.Comment) error {
	_, err := r.db.ExecContext(ctx, `UPDATE comments SET content = ?, updated_at = ? WHERE id = ?`,
		c.Content, c.UpdatedAt, c.ID)
	return mapErr(err)
}

func (r *Repo) DeleteComment(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = ?`, id)
	if err != nil {
		return mapErr(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
