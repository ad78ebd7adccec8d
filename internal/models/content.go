package models

import "gorm.io/datatypes"

// Subject - предмет (верхний уровень учебного каталога)
type Subject struct {
	BaseModel
	Name string `gorm:"not null" json:"name"`

	Classes   []Class    `gorm:"foreignKey:SubjectID" json:"-"`
	Questions []Question `gorm:"foreignKey:SubjectID" json:"-"`
}

// Class - класс внутри предмета
type Class struct {
	BaseModel
	SubjectID string `gorm:"type:uuid;not null;index" json:"subject_id"`
	Name      string `gorm:"not null" json:"name"`

	Courses []Course `gorm:"foreignKey:ClassID" json:"-"`
}

// Course - учебный курс внутри класса
type Course struct {
	BaseModel
	ClassID string `gorm:"type:uuid;not null;index" json:"class_id"`
	Title   string `gorm:"not null" json:"title"`
	Content string `gorm:"type:text;not null" json:"content"`
}

// Question - вопрос викторины по предмету.
// Options хранится как JSON (список вариантов ответа).
type Question struct {
	BaseModel
	SubjectID string         `gorm:"type:uuid;not null;index" json:"subject_id"`
	Text      string         `gorm:"type:text;not null" json:"question"`
	Answer    string         `gorm:"not null" json:"answer"`
	Options   datatypes.JSON `json:"options"`
}
