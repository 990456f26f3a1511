package adapters

import "github.com/quantmuse/eventcore/pkg/models"

// ColumnMap maps canonical record fields to candidate provider column
// names. Resolution is first-candidate-present-wins, which keeps the core
// independent of any provider library's native frame types.
type ColumnMap map[string][]string

// mergeColumnMap overlays user-configured candidates on adapter defaults.
// Configured fields replace the default candidate list wholesale.
func mergeColumnMap(defaults ColumnMap, cfg Config) ColumnMap {
	merged := ColumnMap{}
	for field, candidates := range defaults {
		merged[field] = candidates
	}
	raw := cfg.Map("column_map")
	for field := range raw {
		if candidates := Config(raw).StringSlice(field); len(candidates) > 0 {
			merged[field] = candidates
		}
	}
	return merged
}

// resolve returns the first present, non-empty candidate column as string.
func (m ColumnMap) resolve(row map[string]interface{}, field string) string {
	for _, candidate := range m[field] {
		if v, ok := row[candidate]; ok {
			if s := scalarString(v); s != "" {
				return s
			}
		}
	}
	return ""
}

// recordFromRow maps one provider row into a raw announcement. Unmapped
// columns are preserved in metadata for debugging and replay.
func (m ColumnMap) recordFromRow(row map[string]interface{}) models.RawAnnouncement {
	record := models.RawAnnouncement{
		SourceEventID: m.resolve(row, "source_event_id"),
		Symbol:        m.resolve(row, "symbol"),
		TSCode:        m.resolve(row, "ts_code"),
		Title:         m.resolve(row, "title"),
		Summary:       m.resolve(row, "summary"),
		Content:       m.resolve(row, "content"),
		PublishTime:   m.resolve(row, "publish_time"),
		URL:           m.resolve(row, "url"),
	}
	mapped := map[string]bool{}
	for _, candidates := range m {
		for _, c := range candidates {
			mapped[c] = true
		}
	}
	for k, v := range row {
		if !mapped[k] {
			if record.Metadata == nil {
				record.Metadata = map[string]interface{}{}
			}
			record.Metadata[k] = v
		}
	}
	return record
}
