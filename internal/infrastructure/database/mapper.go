package database

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"typeprompt/internal/domain/entities"
	"typeprompt/internal/domain/locale"
)

type typePromptRow struct {
	Key             uuid.UUID          `db:"key"`
	LocaleID        int32              `db:"locale_id"`
	SubjectTypeName string             `db:"subject_type_name"`
	TextName        string             `db:"text_name"`
	TranslatedText  string             `db:"translated_text"`
	UpdatedAt       pgtype.Timestamptz `db:"updated_at"`
}

// pgtypeTimestamptzToTime returns t.Time when Valid, else zero time.
func pgtypeTimestamptzToTime(t pgtype.Timestamptz) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}

func timeToPgtypeTimestamptz(t time.Time) pgtype.Timestamptz {
	if t.IsZero() {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func typePromptToDomain(r typePromptRow) *entities.TypePrompt {
	return entities.RestoreTypePrompt(entities.TypePromptRecord{
		SubjectTypeName: r.SubjectTypeName,
		TextName:        r.TextName,
		TranslatedText:  r.TranslatedText,
		UpdatedAt:       pgtypeTimestamptzToTime(r.UpdatedAt),
		LocaleID:        locale.ID(r.LocaleID),
		Key:             entities.KeyFromUUID(r.Key),
	})
}

func typePromptToRow(p *entities.TypePrompt) typePromptRow {
	rec := p.Record()
	return typePromptRow{
		Key:             rec.Key.UUID(),
		LocaleID:        int32(rec.LocaleID),
		SubjectTypeName: rec.SubjectTypeName,
		TextName:        rec.TextName,
		TranslatedText:  rec.TranslatedText,
		UpdatedAt:       timeToPgtypeTimestamptz(rec.UpdatedAt),
	}
}
