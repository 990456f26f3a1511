// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/quantmuse/eventcore/ent/auditlog"
	"github.com/quantmuse/eventcore/ent/connector"
	"github.com/quantmuse/eventcore/ent/connectorcheckpoint"
	"github.com/quantmuse/eventcore/ent/connectorfailure"
	"github.com/quantmuse/eventcore/ent/connectorrun"
	"github.com/quantmuse/eventcore/ent/eventrecord"
	"github.com/quantmuse/eventcore/ent/eventsource"
	"github.com/quantmuse/eventcore/ent/nlpconsensus"
	"github.com/quantmuse/eventcore/ent/nlpdriftsnapshot"
	"github.com/quantmuse/eventcore/ent/nlpfeedback"
	"github.com/quantmuse/eventcore/ent/nlpruleset"
	"github.com/quantmuse/eventcore/ent/schema"
	"github.com/quantmuse/eventcore/ent/slaalertstate"
	"github.com/quantmuse/eventcore/ent/slahistory"
	"github.com/quantmuse/eventcore/ent/sourcebudget"
	"github.com/quantmuse/eventcore/ent/sourcecredentialcursor"
	"github.com/quantmuse/eventcore/ent/sourcestate"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	auditlogFields := schema.AuditLog{}.Fields()
	_ = auditlogFields
	// auditlogDescCreatedAt is the schema descriptor for created_at field.
	auditlogDescCreatedAt := auditlogFields[3].Descriptor()
	// auditlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditlog.DefaultCreatedAt = auditlogDescCreatedAt.Default.(func() time.Time)
	connectorFields := schema.Connector{}.Fields()
	_ = connectorFields
	// connectorDescEnabled is the schema descriptor for enabled field.
	connectorDescEnabled := connectorFields[3].Descriptor()
	// connector.DefaultEnabled holds the default value on creation for the enabled field.
	connector.DefaultEnabled = connectorDescEnabled.Default.(bool)
	// connectorDescFetchLimit is the schema descriptor for fetch_limit field.
	connectorDescFetchLimit := connectorFields[4].Descriptor()
	// connector.DefaultFetchLimit holds the default value on creation for the fetch_limit field.
	connector.DefaultFetchLimit = connectorDescFetchLimit.Default.(int)
	// connector.FetchLimitValidator is a validator for the "fetch_limit" field. It is called by the builders before save.
	connector.FetchLimitValidator = connectorDescFetchLimit.Validators[0].(func(int) error)
	// connectorDescPollIntervalMinutes is the schema descriptor for poll_interval_minutes field.
	connectorDescPollIntervalMinutes := connectorFields[5].Descriptor()
	// connector.DefaultPollIntervalMinutes holds the default value on creation for the poll_interval_minutes field.
	connector.DefaultPollIntervalMinutes = connectorDescPollIntervalMinutes.Default.(int)
	// connector.PollIntervalMinutesValidator is a validator for the "poll_interval_minutes" field. It is called by the builders before save.
	connector.PollIntervalMinutesValidator = connectorDescPollIntervalMinutes.Validators[0].(func(int) error)
	// connectorDescReplayBackoffSeconds is the schema descriptor for replay_backoff_seconds field.
	connectorDescReplayBackoffSeconds := connectorFields[6].Descriptor()
	// connector.DefaultReplayBackoffSeconds holds the default value on creation for the replay_backoff_seconds field.
	connector.DefaultReplayBackoffSeconds = connectorDescReplayBackoffSeconds.Default.(int)
	// connector.ReplayBackoffSecondsValidator is a validator for the "replay_backoff_seconds" field. It is called by the builders before save.
	connector.ReplayBackoffSecondsValidator = connectorDescReplayBackoffSeconds.Validators[0].(func(int) error)
	// connectorDescMaxRetry is the schema descriptor for max_retry field.
	connectorDescMaxRetry := connectorFields[7].Descriptor()
	// connector.DefaultMaxRetry holds the default value on creation for the max_retry field.
	connector.DefaultMaxRetry = connectorDescMaxRetry.Default.(int)
	// connector.MaxRetryValidator is a validator for the "max_retry" field. It is called by the builders before save.
	connector.MaxRetryValidator = connectorDescMaxRetry.Validators[0].(func(int) error)
	// connectorDescCreatedAt is the schema descriptor for created_at field.
	connectorDescCreatedAt := connectorFields[11].Descriptor()
	// connector.DefaultCreatedAt holds the default value on creation for the created_at field.
	connector.DefaultCreatedAt = connectorDescCreatedAt.Default.(func() time.Time)
	// connectorDescUpdatedAt is the schema descriptor for updated_at field.
	connectorDescUpdatedAt := connectorFields[12].Descriptor()
	// connector.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	connector.DefaultUpdatedAt = connectorDescUpdatedAt.Default.(func() time.Time)
	// connector.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	connector.UpdateDefaultUpdatedAt = connectorDescUpdatedAt.UpdateDefault.(func() time.Time)
	connectorcheckpointFields := schema.ConnectorCheckpoint{}.Fields()
	_ = connectorcheckpointFields
	// connectorcheckpointDescUpdatedAt is the schema descriptor for updated_at field.
	connectorcheckpointDescUpdatedAt := connectorcheckpointFields[5].Descriptor()
	// connectorcheckpoint.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	connectorcheckpoint.DefaultUpdatedAt = connectorcheckpointDescUpdatedAt.Default.(func() time.Time)
	// connectorcheckpoint.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	connectorcheckpoint.UpdateDefaultUpdatedAt = connectorcheckpointDescUpdatedAt.UpdateDefault.(func() time.Time)
	connectorfailureFields := schema.ConnectorFailure{}.Fields()
	_ = connectorfailureFields
	// connectorfailureDescRetryCount is the schema descriptor for retry_count field.
	connectorfailureDescRetryCount := connectorfailureFields[4].Descriptor()
	// connectorfailure.DefaultRetryCount holds the default value on creation for the retry_count field.
	connectorfailure.DefaultRetryCount = connectorfailureDescRetryCount.Default.(int)
	// connectorfailure.RetryCountValidator is a validator for the "retry_count" field. It is called by the builders before save.
	connectorfailure.RetryCountValidator = connectorfailureDescRetryCount.Validators[0].(func(int) error)
	// connectorfailureDescCreatedAt is the schema descriptor for created_at field.
	connectorfailureDescCreatedAt := connectorfailureFields[8].Descriptor()
	// connectorfailure.DefaultCreatedAt holds the default value on creation for the created_at field.
	connectorfailure.DefaultCreatedAt = connectorfailureDescCreatedAt.Default.(func() time.Time)
	// connectorfailureDescUpdatedAt is the schema descriptor for updated_at field.
	connectorfailureDescUpdatedAt := connectorfailureFields[9].Descriptor()
	// connectorfailure.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	connectorfailure.DefaultUpdatedAt = connectorfailureDescUpdatedAt.Default.(func() time.Time)
	// connectorfailure.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	connectorfailure.UpdateDefaultUpdatedAt = connectorfailureDescUpdatedAt.UpdateDefault.(func() time.Time)
	connectorrunFields := schema.ConnectorRun{}.Fields()
	_ = connectorrunFields
	// connectorrunDescStartedAt is the schema descriptor for started_at field.
	connectorrunDescStartedAt := connectorrunFields[3].Descriptor()
	// connectorrun.DefaultStartedAt holds the default value on creation for the started_at field.
	connectorrun.DefaultStartedAt = connectorrunDescStartedAt.Default.(func() time.Time)
	// connectorrunDescPulledCount is the schema descriptor for pulled_count field.
	connectorrunDescPulledCount := connectorrunFields[7].Descriptor()
	// connectorrun.DefaultPulledCount holds the default value on creation for the pulled_count field.
	connectorrun.DefaultPulledCount = connectorrunDescPulledCount.Default.(int)
	// connectorrunDescNormalizedCount is the schema descriptor for normalized_count field.
	connectorrunDescNormalizedCount := connectorrunFields[8].Descriptor()
	// connectorrun.DefaultNormalizedCount holds the default value on creation for the normalized_count field.
	connectorrun.DefaultNormalizedCount = connectorrunDescNormalizedCount.Default.(int)
	// connectorrunDescInsertedCount is the schema descriptor for inserted_count field.
	connectorrunDescInsertedCount := connectorrunFields[9].Descriptor()
	// connectorrun.DefaultInsertedCount holds the default value on creation for the inserted_count field.
	connectorrun.DefaultInsertedCount = connectorrunDescInsertedCount.Default.(int)
	// connectorrunDescUpdatedCount is the schema descriptor for updated_count field.
	connectorrunDescUpdatedCount := connectorrunFields[10].Descriptor()
	// connectorrun.DefaultUpdatedCount holds the default value on creation for the updated_count field.
	connectorrun.DefaultUpdatedCount = connectorrunDescUpdatedCount.Default.(int)
	// connectorrunDescFailedCount is the schema descriptor for failed_count field.
	connectorrunDescFailedCount := connectorrunFields[11].Descriptor()
	// connectorrun.DefaultFailedCount holds the default value on creation for the failed_count field.
	connectorrun.DefaultFailedCount = connectorrunDescFailedCount.Default.(int)
	// connectorrunDescReplayedCount is the schema descriptor for replayed_count field.
	connectorrunDescReplayedCount := connectorrunFields[12].Descriptor()
	// connectorrun.DefaultReplayedCount holds the default value on creation for the replayed_count field.
	connectorrun.DefaultReplayedCount = connectorrunDescReplayedCount.Default.(int)
	eventrecordFields := schema.EventRecord{}.Fields()
	_ = eventrecordFields
	// eventrecordDescEventType is the schema descriptor for event_type field.
	eventrecordDescEventType := eventrecordFields[3].Descriptor()
	// eventrecord.DefaultEventType holds the default value on creation for the event_type field.
	eventrecord.DefaultEventType = eventrecordDescEventType.Default.(string)
	// eventrecordDescScore is the schema descriptor for score field.
	eventrecordDescScore := eventrecordFields[7].Descriptor()
	// eventrecord.DefaultScore holds the default value on creation for the score field.
	eventrecord.DefaultScore = eventrecordDescScore.Default.(float64)
	// eventrecordDescConfidence is the schema descriptor for confidence field.
	eventrecordDescConfidence := eventrecordFields[8].Descriptor()
	// eventrecord.DefaultConfidence holds the default value on creation for the confidence field.
	eventrecord.DefaultConfidence = eventrecordDescConfidence.Default.(float64)
	// eventrecordDescCreatedAt is the schema descriptor for created_at field.
	eventrecordDescCreatedAt := eventrecordFields[14].Descriptor()
	// eventrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	eventrecord.DefaultCreatedAt = eventrecordDescCreatedAt.Default.(func() time.Time)
	// eventrecordDescUpdatedAt is the schema descriptor for updated_at field.
	eventrecordDescUpdatedAt := eventrecordFields[15].Descriptor()
	// eventrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	eventrecord.DefaultUpdatedAt = eventrecordDescUpdatedAt.Default.(func() time.Time)
	// eventrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	eventrecord.UpdateDefaultUpdatedAt = eventrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	eventsourceFields := schema.EventSource{}.Fields()
	_ = eventsourceFields
	// eventsourceDescTimezone is the schema descriptor for timezone field.
	eventsourceDescTimezone := eventsourceFields[3].Descriptor()
	// eventsource.DefaultTimezone holds the default value on creation for the timezone field.
	eventsource.DefaultTimezone = eventsourceDescTimezone.Default.(string)
	// eventsourceDescIngestionLagMinutes is the schema descriptor for ingestion_lag_minutes field.
	eventsourceDescIngestionLagMinutes := eventsourceFields[4].Descriptor()
	// eventsource.DefaultIngestionLagMinutes holds the default value on creation for the ingestion_lag_minutes field.
	eventsource.DefaultIngestionLagMinutes = eventsourceDescIngestionLagMinutes.Default.(int)
	// eventsource.IngestionLagMinutesValidator is a validator for the "ingestion_lag_minutes" field. It is called by the builders before save.
	eventsource.IngestionLagMinutesValidator = eventsourceDescIngestionLagMinutes.Validators[0].(func(int) error)
	// eventsourceDescReliabilityScore is the schema descriptor for reliability_score field.
	eventsourceDescReliabilityScore := eventsourceFields[5].Descriptor()
	// eventsource.DefaultReliabilityScore holds the default value on creation for the reliability_score field.
	eventsource.DefaultReliabilityScore = eventsourceDescReliabilityScore.Default.(float64)
	// eventsourceDescCreatedAt is the schema descriptor for created_at field.
	eventsourceDescCreatedAt := eventsourceFields[8].Descriptor()
	// eventsource.DefaultCreatedAt holds the default value on creation for the created_at field.
	eventsource.DefaultCreatedAt = eventsourceDescCreatedAt.Default.(func() time.Time)
	// eventsourceDescUpdatedAt is the schema descriptor for updated_at field.
	eventsourceDescUpdatedAt := eventsourceFields[9].Descriptor()
	// eventsource.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	eventsource.DefaultUpdatedAt = eventsourceDescUpdatedAt.Default.(func() time.Time)
	// eventsource.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	eventsource.UpdateDefaultUpdatedAt = eventsourceDescUpdatedAt.UpdateDefault.(func() time.Time)
	nlpconsensusFields := schema.NLPConsensus{}.Fields()
	_ = nlpconsensusFields
	// nlpconsensusDescConsensusScore is the schema descriptor for consensus_score field.
	nlpconsensusDescConsensusScore := nlpconsensusFields[4].Descriptor()
	// nlpconsensus.DefaultConsensusScore holds the default value on creation for the consensus_score field.
	nlpconsensus.DefaultConsensusScore = nlpconsensusDescConsensusScore.Default.(float64)
	// nlpconsensusDescConfidence is the schema descriptor for confidence field.
	nlpconsensusDescConfidence := nlpconsensusFields[5].Descriptor()
	// nlpconsensus.DefaultConfidence holds the default value on creation for the confidence field.
	nlpconsensus.DefaultConfidence = nlpconsensusDescConfidence.Default.(float64)
	// nlpconsensusDescLabelCount is the schema descriptor for label_count field.
	nlpconsensusDescLabelCount := nlpconsensusFields[6].Descriptor()
	// nlpconsensus.DefaultLabelCount holds the default value on creation for the label_count field.
	nlpconsensus.DefaultLabelCount = nlpconsensusDescLabelCount.Default.(int)
	// nlpconsensusDescConflict is the schema descriptor for conflict field.
	nlpconsensusDescConflict := nlpconsensusFields[7].Descriptor()
	// nlpconsensus.DefaultConflict holds the default value on creation for the conflict field.
	nlpconsensus.DefaultConflict = nlpconsensusDescConflict.Default.(bool)
	// nlpconsensusDescCreatedAt is the schema descriptor for created_at field.
	nlpconsensusDescCreatedAt := nlpconsensusFields[9].Descriptor()
	// nlpconsensus.DefaultCreatedAt holds the default value on creation for the created_at field.
	nlpconsensus.DefaultCreatedAt = nlpconsensusDescCreatedAt.Default.(func() time.Time)
	// nlpconsensusDescUpdatedAt is the schema descriptor for updated_at field.
	nlpconsensusDescUpdatedAt := nlpconsensusFields[10].Descriptor()
	// nlpconsensus.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	nlpconsensus.DefaultUpdatedAt = nlpconsensusDescUpdatedAt.Default.(func() time.Time)
	// nlpconsensus.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	nlpconsensus.UpdateDefaultUpdatedAt = nlpconsensusDescUpdatedAt.UpdateDefault.(func() time.Time)
	nlpdriftsnapshotFields := schema.NLPDriftSnapshot{}.Fields()
	_ = nlpdriftsnapshotFields
	// nlpdriftsnapshotDescSampleSize is the schema descriptor for sample_size field.
	nlpdriftsnapshotDescSampleSize := nlpdriftsnapshotFields[4].Descriptor()
	// nlpdriftsnapshot.DefaultSampleSize holds the default value on creation for the sample_size field.
	nlpdriftsnapshot.DefaultSampleSize = nlpdriftsnapshotDescSampleSize.Default.(int)
	// nlpdriftsnapshotDescBaselineSampleSize is the schema descriptor for baseline_sample_size field.
	nlpdriftsnapshotDescBaselineSampleSize := nlpdriftsnapshotFields[5].Descriptor()
	// nlpdriftsnapshot.DefaultBaselineSampleSize holds the default value on creation for the baseline_sample_size field.
	nlpdriftsnapshot.DefaultBaselineSampleSize = nlpdriftsnapshotDescBaselineSampleSize.Default.(int)
	// nlpdriftsnapshotDescHitRateDelta is the schema descriptor for hit_rate_delta field.
	nlpdriftsnapshotDescHitRateDelta := nlpdriftsnapshotFields[8].Descriptor()
	// nlpdriftsnapshot.DefaultHitRateDelta holds the default value on creation for the hit_rate_delta field.
	nlpdriftsnapshot.DefaultHitRateDelta = nlpdriftsnapshotDescHitRateDelta.Default.(float64)
	// nlpdriftsnapshotDescScoreP50Delta is the schema descriptor for score_p50_delta field.
	nlpdriftsnapshotDescScoreP50Delta := nlpdriftsnapshotFields[9].Descriptor()
	// nlpdriftsnapshot.DefaultScoreP50Delta holds the default value on creation for the score_p50_delta field.
	nlpdriftsnapshot.DefaultScoreP50Delta = nlpdriftsnapshotDescScoreP50Delta.Default.(float64)
	// nlpdriftsnapshotDescCreatedAt is the schema descriptor for created_at field.
	nlpdriftsnapshotDescCreatedAt := nlpdriftsnapshotFields[15].Descriptor()
	// nlpdriftsnapshot.DefaultCreatedAt holds the default value on creation for the created_at field.
	nlpdriftsnapshot.DefaultCreatedAt = nlpdriftsnapshotDescCreatedAt.Default.(func() time.Time)
	nlpfeedbackFields := schema.NLPFeedback{}.Fields()
	_ = nlpfeedbackFields
	// nlpfeedbackDescCreatedAt is the schema descriptor for created_at field.
	nlpfeedbackDescCreatedAt := nlpfeedbackFields[7].Descriptor()
	// nlpfeedback.DefaultCreatedAt holds the default value on creation for the created_at field.
	nlpfeedback.DefaultCreatedAt = nlpfeedbackDescCreatedAt.Default.(func() time.Time)
	nlprulesetFields := schema.NLPRuleset{}.Fields()
	_ = nlprulesetFields
	// nlprulesetDescIsActive is the schema descriptor for is_active field.
	nlprulesetDescIsActive := nlprulesetFields[3].Descriptor()
	// nlpruleset.DefaultIsActive holds the default value on creation for the is_active field.
	nlpruleset.DefaultIsActive = nlprulesetDescIsActive.Default.(bool)
	// nlprulesetDescCreatedAt is the schema descriptor for created_at field.
	nlprulesetDescCreatedAt := nlprulesetFields[5].Descriptor()
	// nlpruleset.DefaultCreatedAt holds the default value on creation for the created_at field.
	nlpruleset.DefaultCreatedAt = nlprulesetDescCreatedAt.Default.(func() time.Time)
	// nlprulesetDescUpdatedAt is the schema descriptor for updated_at field.
	nlprulesetDescUpdatedAt := nlprulesetFields[6].Descriptor()
	// nlpruleset.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	nlpruleset.DefaultUpdatedAt = nlprulesetDescUpdatedAt.Default.(func() time.Time)
	// nlpruleset.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	nlpruleset.UpdateDefaultUpdatedAt = nlprulesetDescUpdatedAt.UpdateDefault.(func() time.Time)
	slaalertstateFields := schema.SLAAlertState{}.Fields()
	_ = slaalertstateFields
	// slaalertstateDescFirstSeenAt is the schema descriptor for first_seen_at field.
	slaalertstateDescFirstSeenAt := slaalertstateFields[7].Descriptor()
	// slaalertstate.DefaultFirstSeenAt holds the default value on creation for the first_seen_at field.
	slaalertstate.DefaultFirstSeenAt = slaalertstateDescFirstSeenAt.Default.(func() time.Time)
	// slaalertstateDescLastSeenAt is the schema descriptor for last_seen_at field.
	slaalertstateDescLastSeenAt := slaalertstateFields[8].Descriptor()
	// slaalertstate.DefaultLastSeenAt holds the default value on creation for the last_seen_at field.
	slaalertstate.DefaultLastSeenAt = slaalertstateDescLastSeenAt.Default.(func() time.Time)
	// slaalertstateDescRepeatCount is the schema descriptor for repeat_count field.
	slaalertstateDescRepeatCount := slaalertstateFields[12].Descriptor()
	// slaalertstate.DefaultRepeatCount holds the default value on creation for the repeat_count field.
	slaalertstate.DefaultRepeatCount = slaalertstateDescRepeatCount.Default.(int)
	// slaalertstate.RepeatCountValidator is a validator for the "repeat_count" field. It is called by the builders before save.
	slaalertstate.RepeatCountValidator = slaalertstateDescRepeatCount.Validators[0].(func(int) error)
	// slaalertstateDescEscalationLevel is the schema descriptor for escalation_level field.
	slaalertstateDescEscalationLevel := slaalertstateFields[13].Descriptor()
	// slaalertstate.DefaultEscalationLevel holds the default value on creation for the escalation_level field.
	slaalertstate.DefaultEscalationLevel = slaalertstateDescEscalationLevel.Default.(int)
	// slaalertstate.EscalationLevelValidator is a validator for the "escalation_level" field. It is called by the builders before save.
	slaalertstate.EscalationLevelValidator = slaalertstateDescEscalationLevel.Validators[0].(func(int) error)
	// slaalertstateDescIsOpen is the schema descriptor for is_open field.
	slaalertstateDescIsOpen := slaalertstateFields[15].Descriptor()
	// slaalertstate.DefaultIsOpen holds the default value on creation for the is_open field.
	slaalertstate.DefaultIsOpen = slaalertstateDescIsOpen.Default.(bool)
	// slaalertstateDescUpdatedAt is the schema descriptor for updated_at field.
	slaalertstateDescUpdatedAt := slaalertstateFields[16].Descriptor()
	// slaalertstate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	slaalertstate.DefaultUpdatedAt = slaalertstateDescUpdatedAt.Default.(func() time.Time)
	// slaalertstate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	slaalertstate.UpdateDefaultUpdatedAt = slaalertstateDescUpdatedAt.UpdateDefault.(func() time.Time)
	slahistoryFields := schema.SLAHistory{}.Fields()
	_ = slahistoryFields
	// slahistoryDescObservedAt is the schema descriptor for observed_at field.
	slahistoryDescObservedAt := slahistoryFields[0].Descriptor()
	// slahistory.DefaultObservedAt holds the default value on creation for the observed_at field.
	slahistory.DefaultObservedAt = slahistoryDescObservedAt.Default.(func() time.Time)
	// slahistoryDescPendingFailures is the schema descriptor for pending_failures field.
	slahistoryDescPendingFailures := slahistoryFields[7].Descriptor()
	// slahistory.DefaultPendingFailures holds the default value on creation for the pending_failures field.
	slahistory.DefaultPendingFailures = slahistoryDescPendingFailures.Default.(int)
	// slahistoryDescDeadFailures is the schema descriptor for dead_failures field.
	slahistoryDescDeadFailures := slahistoryFields[8].Descriptor()
	// slahistory.DefaultDeadFailures holds the default value on creation for the dead_failures field.
	slahistory.DefaultDeadFailures = slahistoryDescDeadFailures.Default.(int)
	sourcebudgetFields := schema.SourceBudget{}.Fields()
	_ = sourcebudgetFields
	// sourcebudgetDescRequestCount is the schema descriptor for request_count field.
	sourcebudgetDescRequestCount := sourcebudgetFields[3].Descriptor()
	// sourcebudget.DefaultRequestCount holds the default value on creation for the request_count field.
	sourcebudget.DefaultRequestCount = sourcebudgetDescRequestCount.Default.(int)
	// sourcebudget.RequestCountValidator is a validator for the "request_count" field. It is called by the builders before save.
	sourcebudget.RequestCountValidator = sourcebudgetDescRequestCount.Validators[0].(func(int) error)
	// sourcebudgetDescUpdatedAt is the schema descriptor for updated_at field.
	sourcebudgetDescUpdatedAt := sourcebudgetFields[4].Descriptor()
	// sourcebudget.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	sourcebudget.DefaultUpdatedAt = sourcebudgetDescUpdatedAt.Default.(func() time.Time)
	// sourcebudget.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	sourcebudget.UpdateDefaultUpdatedAt = sourcebudgetDescUpdatedAt.UpdateDefault.(func() time.Time)
	sourcecredentialcursorFields := schema.SourceCredentialCursor{}.Fields()
	_ = sourcecredentialcursorFields
	// sourcecredentialcursorDescNextIndex is the schema descriptor for next_index field.
	sourcecredentialcursorDescNextIndex := sourcecredentialcursorFields[2].Descriptor()
	// sourcecredentialcursor.DefaultNextIndex holds the default value on creation for the next_index field.
	sourcecredentialcursor.DefaultNextIndex = sourcecredentialcursorDescNextIndex.Default.(int)
	// sourcecredentialcursor.NextIndexValidator is a validator for the "next_index" field. It is called by the builders before save.
	sourcecredentialcursor.NextIndexValidator = sourcecredentialcursorDescNextIndex.Validators[0].(func(int) error)
	// sourcecredentialcursorDescUpdatedAt is the schema descriptor for updated_at field.
	sourcecredentialcursorDescUpdatedAt := sourcecredentialcursorFields[3].Descriptor()
	// sourcecredentialcursor.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	sourcecredentialcursor.DefaultUpdatedAt = sourcecredentialcursorDescUpdatedAt.Default.(func() time.Time)
	// sourcecredentialcursor.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	sourcecredentialcursor.UpdateDefaultUpdatedAt = sourcecredentialcursorDescUpdatedAt.UpdateDefault.(func() time.Time)
	sourcestateFields := schema.SourceState{}.Fields()
	_ = sourcestateFields
	// sourcestateDescPriority is the schema descriptor for priority field.
	sourcestateDescPriority := sourcestateFields[3].Descriptor()
	// sourcestate.DefaultPriority holds the default value on creation for the priority field.
	sourcestate.DefaultPriority = sourcestateDescPriority.Default.(int)
	// sourcestateDescEnabled is the schema descriptor for enabled field.
	sourcestateDescEnabled := sourcestateFields[4].Descriptor()
	// sourcestate.DefaultEnabled holds the default value on creation for the enabled field.
	sourcestate.DefaultEnabled = sourcestateDescEnabled.Default.(bool)
	// sourcestateDescHealthScore is the schema descriptor for health_score field.
	sourcestateDescHealthScore := sourcestateFields[5].Descriptor()
	// sourcestate.DefaultHealthScore holds the default value on creation for the health_score field.
	sourcestate.DefaultHealthScore = sourcestateDescHealthScore.Default.(float64)
	// sourcestateDescConsecutiveFailures is the schema descriptor for consecutive_failures field.
	sourcestateDescConsecutiveFailures := sourcestateFields[6].Descriptor()
	// sourcestate.DefaultConsecutiveFailures holds the default value on creation for the consecutive_failures field.
	sourcestate.DefaultConsecutiveFailures = sourcestateDescConsecutiveFailures.Default.(int)
	// sourcestateDescTotalSuccess is the schema descriptor for total_success field.
	sourcestateDescTotalSuccess := sourcestateFields[7].Descriptor()
	// sourcestate.DefaultTotalSuccess holds the default value on creation for the total_success field.
	sourcestate.DefaultTotalSuccess = sourcestateDescTotalSuccess.Default.(int)
	// sourcestateDescTotalFailures is the schema descriptor for total_failures field.
	sourcestateDescTotalFailures := sourcestateFields[8].Descriptor()
	// sourcestate.DefaultTotalFailures holds the default value on creation for the total_failures field.
	sourcestate.DefaultTotalFailures = sourcestateDescTotalFailures.Default.(int)
	// sourcestateDescIsActive is the schema descriptor for is_active field.
	sourcestateDescIsActive := sourcestateFields[16].Descriptor()
	// sourcestate.DefaultIsActive holds the default value on creation for the is_active field.
	sourcestate.DefaultIsActive = sourcestateDescIsActive.Default.(bool)
	// sourcestateDescUpdatedAt is the schema descriptor for updated_at field.
	sourcestateDescUpdatedAt := sourcestateFields[17].Descriptor()
	// sourcestate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	sourcestate.DefaultUpdatedAt = sourcestateDescUpdatedAt.Default.(func() time.Time)
	// sourcestate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	sourcestate.UpdateDefaultUpdatedAt = sourcestateDescUpdatedAt.UpdateDefault.(func() time.Time)
}
