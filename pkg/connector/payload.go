package connector

import (
	"encoding/json"
	"fmt"

	"github.com/quantmuse/eventcore/pkg/models"
)

// payloadToMap round-trips a typed failure payload into the jsonb shape
// stored on connector_failures.
func payloadToMap(payload models.FailurePayload) map[string]interface{} {
	data, err := json.Marshal(payload)
	if err != nil {
		return map[string]interface{}{"phase": payload.Phase, "error": payload.Error}
	}
	var out map[string]interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		return map[string]interface{}{"phase": payload.Phase, "error": payload.Error}
	}
	return out
}

// payloadFromMap is the inverse of payloadToMap.
func payloadFromMap(raw map[string]interface{}) (models.FailurePayload, error) {
	data, err := json.Marshal(raw)
	if err != nil {
		return models.FailurePayload{}, fmt.Errorf("encode failure payload: %w", err)
	}
	var payload models.FailurePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return models.FailurePayload{}, fmt.Errorf("decode failure payload: %w", err)
	}
	return payload, nil
}

// attemptsToDetails converts source attempts for the run details column.
func attemptsToDetails(attempts []models.SourceAttempt) []interface{} {
	out := make([]interface{}, 0, len(attempts))
	for _, a := range attempts {
		entry := map[string]interface{}{
			"source_key":     a.SourceKey,
			"connector_type": a.ConnectorType,
			"status":         a.Status,
			"latency_ms":     a.LatencyMS,
		}
		if a.CredentialAlias != "" {
			entry["credential_alias"] = a.CredentialAlias
		}
		if a.Error != "" {
			entry["error"] = a.Error
		}
		out = append(out, entry)
	}
	return out
}
