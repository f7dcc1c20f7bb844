package dbmodels

import (
	"ats-backend/models"
	applicationapimodels "ats-backend/models/api/application"
)

// ApplicationEvent is the audit trail of status changes on an application.
type ApplicationEvent struct {
	BaseModel
	ApplicationID string       `gorm:"type:varchar(36);index"`
	Application   *Application `gorm:"foreignKey:ApplicationID"`
	ActorID       string       `gorm:"type:varchar(36)"`
	ActorName     string       `gorm:"type:varchar(255)"`
	FromStatus    string       `gorm:"type:varchar(100)"`
	ToStatus      string       `gorm:"type:varchar(100)"`
	BucketChanged bool
	Note          string
}

func (e ApplicationEvent) ToModel() applicationapimodels.ApplicationEventView {
	return applicationapimodels.ApplicationEventView{
		ID:            e.ID,
		ApplicationID: e.ApplicationID,
		ActorName:     e.ActorName,
		FromStatus:    e.FromStatus,
		ToStatus:      e.ToStatus,
		FromBucket:    models.NormalizeApplicationStatus(e.FromStatus),
		ToBucket:      models.NormalizeApplicationStatus(e.ToStatus),
		BucketChanged: e.BucketChanged,
		Note:          e.Note,
		CreatedAt:     e.CreatedAt,
	}
}
