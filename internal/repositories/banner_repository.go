package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	intconfig "github.com/Thakshinss/bds-nagercoil-ride/internal/config"
	"github.com/Thakshinss/bds-nagercoil-ride/internal/domain"
	"github.com/Thakshinss/bds-nagercoil-ride/internal/domain/models"
	"github.com/Thakshinss/bds-nagercoil-ride/internal/utils"

	"github.com/google/uuid"
)

// BannerRepository wraps DB access for banner_content with key-presence PATCH
// semantics: an admin edit may carry any subset of text/is_active/display_order
// and only the keys present in the payload are written.
type BannerRepository struct {
	DB *sql.DB
}

func (r BannerRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const bannerSelect = `
	SELECT id, text, is_active, display_order, created_at, updated_at
	FROM banner_content
`

func scanBanner(scan func(dest ...any) error) (models.BannerContent, error) {
	var b models.BannerContent
	var createdAt, updatedAt sql.NullTime
	if err := scan(&b.ID, &b.Text, &b.IsActive, &b.DisplayOrder, &createdAt, &updatedAt); err != nil {
		return models.BannerContent{}, err
	}
	if createdAt.Valid {
		b.CreatedAt = utils.FormatDateTime(createdAt.Time)
	}
	if updatedAt.Valid {
		b.UpdatedAt = utils.FormatDateTime(updatedAt.Time)
	}
	return b, nil
}

func (r BannerRepository) list(query string, args ...any) ([]models.BannerContent, error) {
	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.BannerContent{}
	for rows.Next() {
		b, err := scanBanner(rows.Scan)
		if err != nil {
			return nil, err
		}
		list = append(list, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

// ListAll returns every banner row, active entries first then by display order.
func (r BannerRepository) ListAll() ([]models.BannerContent, error) {
	return r.list(bannerSelect + ` ORDER BY is_active DESC, display_order ASC, id ASC`)
}

// ListActive returns only active entries in ascending display order. The id
// tiebreak keeps equal orders stable across reloads.
func (r BannerRepository) ListActive() ([]models.BannerContent, error) {
	return r.list(bannerSelect+` WHERE is_active = ? ORDER BY display_order ASC, id ASC`, true)
}

func (r BannerRepository) GetByID(id string) (models.BannerContent, error) {
	b, err := scanBanner(r.db().QueryRow(bannerSelect+` WHERE id = ?`, id).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return models.BannerContent{}, domain.NotFoundError{Resource: "banner content", Err: err}
	}
	return b, err
}

func (r BannerRepository) Create(b models.BannerContent) (models.BannerContent, error) {
	id := uuid.NewString()
	_, err := r.db().Exec(`
		INSERT INTO banner_content (id, text, is_active, display_order, created_at, updated_at)
		VALUES (?, ?, ?, ?, NOW(), NOW())
	`, id, b.Text, b.IsActive, b.DisplayOrder)
	if err != nil {
		return models.BannerContent{}, err
	}
	return r.GetByID(id)
}

// UpdatePartial applies only fields present in raw JSON (key presence),
// keeping existing data intact, and returns the updated record.
func (r BannerRepository) UpdatePartial(id string, rawJSON []byte) (models.BannerContent, error) {
	existing, err := r.GetByID(id)
	if err != nil {
		return models.BannerContent{}, err
	}

	merged, presence, err := buildBannerPatch(existing, rawJSON)
	if err != nil {
		return merged, err
	}

	sets := []string{}
	args := []any{}
	add := func(cond bool, column string, val any) {
		if cond {
			sets = append(sets, column+"=?")
			args = append(args, val)
		}
	}

	add(presence.Text, "text", merged.Text)
	add(presence.IsActive, "is_active", merged.IsActive)
	add(presence.DisplayOrder, "display_order", merged.DisplayOrder)

	if len(sets) == 0 {
		return merged, nil
	}
	sets = append(sets, "updated_at=NOW()")

	args = append(args, id)
	if _, err := r.db().Exec(`UPDATE banner_content SET `+strings.Join(sets, ", ")+` WHERE id=?`, args...); err != nil {
		return merged, err
	}

	return r.GetByID(id)
}

func (r BannerRepository) Delete(id string) error {
	res, err := r.db().Exec(`DELETE FROM banner_content WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return domain.NotFoundError{Resource: "banner content"}
	}
	return nil
}

type bannerFieldPresence struct {
	Text         bool
	IsActive     bool
	DisplayOrder bool
}

type bannerPatchInput struct {
	Text         *string `json:"text"`
	IsActive     *bool   `json:"is_active"`
	DisplayOrder *int    `json:"display_order"`
}

// buildBannerPatch merges payload into the existing row respecting key
// presence. A present-but-blank text keeps the stored value so an edit form
// cannot accidentally blank the banner.
func buildBannerPatch(existing models.BannerContent, rawJSON []byte) (models.BannerContent, bannerFieldPresence, error) {
	payloadKeys := map[string]bool{}
	var payloadMap map[string]any
	if err := json.Unmarshal(rawJSON, &payloadMap); err == nil {
		for k := range payloadMap {
			payloadKeys[strings.ToLower(k)] = true
		}
	}

	var input bannerPatchInput
	if err := json.Unmarshal(rawJSON, &input); err != nil {
		return existing, bannerFieldPresence{}, err
	}

	presence := bannerFieldPresence{
		Text:         payloadKeys["text"],
		IsActive:     payloadKeys["is_active"],
		DisplayOrder: payloadKeys["display_order"],
	}

	merged := existing

	if presence.Text {
		if input.Text != nil && strings.TrimSpace(*input.Text) != "" {
			merged.Text = strings.TrimSpace(*input.Text)
		} else {
			presence.Text = false
		}
	}
	if presence.IsActive {
		if input.IsActive != nil {
			merged.IsActive = *input.IsActive
		} else {
			presence.IsActive = false
		}
	}
	if presence.DisplayOrder {
		if input.DisplayOrder != nil && *input.DisplayOrder >= 0 {
			merged.DisplayOrder = *input.DisplayOrder
		} else {
			presence.DisplayOrder = false
		}
	}

	return merged, presence, nil
}
