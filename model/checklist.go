// model/checklist.go
package model

const (
	MaxChecklistNameLength = 50
	DefaultChecklistColor  = "#ffffff"
)

type Checklist struct {
	ID     int    `gorm:"column:id;primaryKey;autoIncrement"`
	Name   string `gorm:"column:name;type:varchar(50);not null"`
	Color  string `gorm:"column:color;type:varchar(7);default:'#ffffff';not null"`
	UserID string `gorm:"column:user_id;type:varchar(36);not null;index"`

	// Relations
	User  User       `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE"`
	Items []TaskItem `gorm:"foreignKey:ChecklistID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE"`
}

func (Checklist) TableName() string {
	return "checklists"
}
