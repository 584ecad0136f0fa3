package registrationRepository

import (
	"CompetitionHub/internal/api/registration"
	"CompetitionHub/internal/entity"
	contextPkg "CompetitionHub/pkg/context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type RegistrationDB struct {
	ID                 sql.NullString `db:"id"`
	CompetitionID      sql.NullString `db:"competition_id"`
	CompetitionName    sql.NullString `db:"competition_name"`
	Nama               sql.NullString `db:"nama"`
	Gender             sql.NullString `db:"gender"`
	Sabuk              sql.NullString `db:"sabuk"`
	TempatTanggalLahir sql.NullString `db:"tempat_tanggal_lahir"`
	Dojang             sql.NullString `db:"dojang"`
	Berat              sql.NullString `db:"berat"`
	Tinggi             sql.NullString `db:"tinggi"`
	Kategori           sql.NullString `db:"kategori"`
	Kelas              sql.NullString `db:"kelas"`
	OrderJersey        sql.NullBool   `db:"order_jersey"`
	JerseySize         sql.NullString `db:"jersey_size"`
	Email              sql.NullString `db:"email"`
	Whatsapp           sql.NullString `db:"whatsapp"`
	ReceiptURL         sql.NullString `db:"receipt_url"`
	RegisteredAt       time.Time      `db:"registered_at"`
	CreatedAt          time.Time      `db:"created_at"`
	UpdatedAt          time.Time      `db:"updated_at"`
}

func (r *registrationRepository) Create(c context.Context, reg entity.Registration) error {
	requestID := contextPkg.GetRequestID(c)
	now := time.Now()
	argsKV := map[string]interface{}{
		"id":                   reg.ID,
		"competition_id":       reg.CompetitionID,
		"competition_name":     reg.CompetitionName,
		"nama":                 reg.Nama,
		"gender":               reg.Gender,
		"sabuk":                reg.Sabuk,
		"tempat_tanggal_lahir": reg.TempatTanggalLahir,
		"dojang":               reg.Dojang,
		"berat":                reg.Berat,
		"tinggi":               reg.Tinggi,
		"kategori":             reg.KategoriText(),
		"kelas":                reg.Kelas,
		"order_jersey":         reg.OrderJersey,
		"jersey_size":          nullString(reg.JerseySize),
		"email":                nullString(reg.Email),
		"whatsapp":             nullString(reg.Whatsapp),
		"receipt_url":          nullString(reg.ReceiptURL),
		"registered_at":        reg.RegisteredAt,
		"created_at":           now,
		"updated_at":           now,
	}

	query, args, err := sqlx.Named(queryCreateRegistration, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for Create")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating registration")
		return err
	}

	return nil
}

func (r *registrationRepository) GetByID(c context.Context, id string) (entity.Registration, error) {
	requestID := contextPkg.GetRequestID(c)
	var row RegistrationDB

	query, args, err := sqlx.Named(queryGetRegistrationByID, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID named query preparation err")
		return entity.Registration{}, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id":      requestID,
				"registration_id": id,
			}).Warn("GetByID no rows found")
			return entity.Registration{}, registration.ErrRegistrationNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID execution err")
		return entity.Registration{}, err
	}

	return makeRegistration(row), nil
}

func (r *registrationRepository) List(c context.Context, filter entity.RegistrationFilter) ([]entity.Registration, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []RegistrationDB

	query, args, err := sqlx.Named(queryListRegistrations, map[string]interface{}{
		"competition_id": filter.CompetitionID,
		"limit":          filter.Limit,
		"offset":         filter.Offset,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("List named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("List execution err")
		return nil, err
	}

	result := make([]entity.Registration, 0, len(rows))
	for _, row := range rows {
		result = append(result, makeRegistration(row))
	}
	return result, nil
}

func (r *registrationRepository) Count(c context.Context, filter entity.RegistrationFilter) (int, error) {
	requestID := contextPkg.GetRequestID(c)

	query, args, err := sqlx.Named(queryCountRegistrations, map[string]interface{}{
		"competition_id": filter.CompetitionID,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Count named query preparation err")
		return 0, err
	}
	query = r.q.Rebind(query)

	var total int
	if err := r.q.GetContext(c, &total, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Count execution err")
		return 0, err
	}
	return total, nil
}

func (r *registrationRepository) UpdateReceiptURL(c context.Context, id string, receiptURL string) error {
	requestID := contextPkg.GetRequestID(c)

	query, args, err := sqlx.Named(queryUpdateReceiptURL, map[string]interface{}{
		"id":          id,
		"receipt_url": receiptURL,
		"updated_at":  time.Now(),
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateReceiptURL named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateReceiptURL execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return registration.ErrRegistrationNotFound
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// splitKategori reverses Registration.KategoriText.
func splitKategori(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func makeRegistration(row RegistrationDB) entity.Registration {
	return entity.Registration{
		ID:                 row.ID.String,
		CompetitionID:      row.CompetitionID.String,
		CompetitionName:    row.CompetitionName.String,
		Nama:               row.Nama.String,
		Gender:             row.Gender.String,
		Sabuk:              row.Sabuk.String,
		TempatTanggalLahir: row.TempatTanggalLahir.String,
		Dojang:             row.Dojang.String,
		Berat:              row.Berat.String,
		Tinggi:             row.Tinggi.String,
		Kategori:           splitKategori(row.Kategori.String),
		Kelas:              row.Kelas.String,
		OrderJersey:        row.OrderJersey.Bool,
		JerseySize:         row.JerseySize.String,
		Email:              row.Email.String,
		Whatsapp:           row.Whatsapp.String,
		ReceiptURL:         row.ReceiptURL.String,
		RegisteredAt:       row.RegisteredAt,
		CreatedAt:          row.CreatedAt,
		UpdatedAt:          row.UpdatedAt,
	}
}
