package entity

import (
	"legalconnect/core/entity"

	"github.com/google/uuid"
)

type CaseStatus string

const (
	CaseStatusInProgress CaseStatus = "IN_PROGRESS"
	CaseStatusResolved   CaseStatus = "RESOLVED"
)

type Case struct {
	LawyerID    uuid.UUID  `db:"lawyer_id" json:"lawyer_id"`
	ClientID    uuid.UUID  `db:"client_id" json:"client_id"`
	Title       string     `db:"title" json:"title"`
	Description string     `db:"description" json:"description"`
	Status      CaseStatus `db:"status" json:"status"`
	entity.BaseEntity
}
