package entity

import (
	"time"

	"legalconnect/core/entity"

	"github.com/google/uuid"
)

type ScheduleType string

const (
	ScheduleTypeMeeting                     ScheduleType = "MEETING"
	ScheduleTypeCourtHearing                ScheduleType = "COURT_HEARING"
	ScheduleTypeDocumentSubmissionDeadline  ScheduleType = "DOCUMENT_SUBMISSION_DEADLINE"
	ScheduleTypePaymentDueDate              ScheduleType = "PAYMENT_DUE_DATE"
	ScheduleTypeFollowUpCall                ScheduleType = "FOLLOW_UP_CALL"
	ScheduleTypeMediationSession            ScheduleType = "MEDIATION_SESSION"
	ScheduleTypeArbitrationSession          ScheduleType = "ARBITRATION_SESSION"
	ScheduleTypeLegalNoticeResponseDeadline ScheduleType = "LEGAL_NOTICE_RESPONSE_DEADLINE"
	ScheduleTypeContractSigning             ScheduleType = "CONTRACT_SIGNING"
	ScheduleTypeLegalAdviceSession          ScheduleType = "LEGAL_ADVICE_SESSION"
	ScheduleTypeDepositionDate              ScheduleType = "DEPOSITION_DATE"
	ScheduleTypeDiscoveryDate               ScheduleType = "DISCOVERY_DATE"
	ScheduleTypeComplianceDeadline          ScheduleType = "COMPLIANCE_DEADLINE"
	ScheduleTypeBailHearing                 ScheduleType = "BAIL_HEARING"
	ScheduleTypeParoleMeeting               ScheduleType = "PAROLE_MEETING"
	ScheduleTypeProbationMeeting            ScheduleType = "PROBATION_MEETING"
	ScheduleTypeEvidenceCollectionReminder  ScheduleType = "EVIDENCE_COLLECTION_REMINDER"
	ScheduleTypeOther                       ScheduleType = "OTHER"
)

var validScheduleTypes = map[ScheduleType]struct{}{
	ScheduleTypeMeeting:                     {},
	ScheduleTypeCourtHearing:                {},
	ScheduleTypeDocumentSubmissionDeadline:  {},
	ScheduleTypePaymentDueDate:              {},
	ScheduleTypeFollowUpCall:                {},
	ScheduleTypeMediationSession:            {},
	ScheduleTypeArbitrationSession:          {},
	ScheduleTypeLegalNoticeResponseDeadline: {},
	ScheduleTypeContractSigning:             {},
	ScheduleTypeLegalAdviceSession:          {},
	ScheduleTypeDepositionDate:              {},
	ScheduleTypeDiscoveryDate:               {},
	ScheduleTypeComplianceDeadline:          {},
	ScheduleTypeBailHearing:                 {},
	ScheduleTypeParoleMeeting:               {},
	ScheduleTypeProbationMeeting:            {},
	ScheduleTypeEvidenceCollectionReminder:  {},
	ScheduleTypeOther:                       {},
}

func (t ScheduleType) IsValid() bool {
	_, ok := validScheduleTypes[t]
	return ok
}

// Schedule is the local, authoritative record. Its Google Calendar twin (if
// any) is tracked separately in schedule_google_calendar_events.
type Schedule struct {
	CaseID      uuid.UUID    `db:"case_id" json:"case_id"`
	LawyerID    uuid.UUID    `db:"lawyer_id" json:"lawyer_id"`
	ClientID    uuid.UUID    `db:"client_id" json:"client_id"`
	Title       string       `db:"title" json:"title"`
	Type        ScheduleType `db:"type" json:"type"`
	Description string       `db:"description" json:"description"`
	Date        time.Time    `db:"date" json:"date"`
	StartTime   time.Time    `db:"start_time" json:"start_time"`
	EndTime     time.Time    `db:"end_time" json:"end_time"`
	entity.BaseEntity
}
