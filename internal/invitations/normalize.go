package invitations

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/rahmatsubandi/undanganku/internal/models"
)

var emptyList = datatypes.JSON([]byte("[]"))

// Normalize backfills fields that rows written by older releases may lack:
// theme, cover photo, quranic verse and citation, the settings sub-document,
// and the music playlist keys inside settings. It only fills absent values —
// a present value is never overwritten, even when it is an empty string, and
// unknown settings keys survive untouched. Every read path (owner get, owner
// list, public get) must run documents through here; it is idempotent.
func Normalize(inv *models.Invitation) error {
	if inv == nil {
		return nil
	}

	if inv.Theme == "" {
		inv.Theme = DefaultTheme
	}

	inv.LoveStory = normalizeList(inv.LoveStory)
	inv.Gallery = normalizeList(inv.Gallery)
	inv.Gifts = normalizeList(inv.Gifts)

	settings, err := normalizeSettings(inv.Settings)
	if err != nil {
		return fmt.Errorf("invitations: normalize settings for %s: %w", inv.ID, err)
	}
	inv.Settings = settings

	return nil
}

// NormalizeAll normalizes a list fetch in place with identical rules.
func NormalizeAll(invs []models.Invitation) error {
	for i := range invs {
		if err := Normalize(&invs[i]); err != nil {
			return err
		}
	}
	return nil
}

func normalizeList(raw datatypes.JSON) datatypes.JSON {
	if len(raw) == 0 || string(raw) == "null" {
		return emptyList
	}
	return raw
}

// normalizeSettings merges the declared defaults into a stored settings blob
// key by key, so documents written before a key existed pick up its default
// while present keys keep their stored value.
func normalizeSettings(raw datatypes.JSON) (datatypes.JSON, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return json.Marshal(DefaultSettings())
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}

	defaults, err := defaultSettingsKeys()
	if err != nil {
		return nil, err
	}

	changed := false
	for key, value := range defaults {
		if _, present := doc[key]; !present {
			doc[key] = value
			changed = true
		}
	}

	if !changed {
		return raw, nil
	}
	return json.Marshal(doc)
}

func defaultSettingsKeys() (map[string]json.RawMessage, error) {
	encoded, err := json.Marshal(DefaultSettings())
	if err != nil {
		return nil, err
	}

	keys := make(map[string]json.RawMessage)
	if err := json.Unmarshal(encoded, &keys); err != nil {
		return nil, err
	}
	return keys, nil
}
