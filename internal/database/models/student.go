package models

// Student is a candidate tracked by organizations' talent relationships
type Student struct {
	BaseModel
	Name           string `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	Email          string `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	StudentNumber  string `json:"student_number" gorm:"size:40" validate:"max=40"`
	Major          string `json:"major" gorm:"size:100" validate:"max=100"`
	GraduationYear int    `json:"graduation_year"`
}

// TableName returns the table name for Student
func (Student) TableName() string {
	return "students"
}
