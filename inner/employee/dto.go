package employee

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Entity struct {
	Id             primitive.ObjectID `bson:"_id,omitempty"`
	EmployeeId     string             `bson:"employeeId"`
	Name           string             `bson:"name"`
	Dob            time.Time          `bson:"dob"`
	Gender         string             `bson:"gender"`
	Email          string             `bson:"email"`
	Phone          string             `bson:"phone"`
	EmploymentType string             `bson:"employmentType"`
	Department     string             `bson:"department"`
	JobTitle       string             `bson:"jobTitle"`
	Salary         float64            `bson:"salary"`
	Address        string             `bson:"address"`
	Skills         []string           `bson:"skills"`
	EducationLevel string             `bson:"educationLevel"`
	CreatedAt      time.Time          `bson:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt"`
}

func (e *Entity) toResponse() Response {
	return Response{
		EmployeeId:     e.EmployeeId,
		Name:           e.Name,
		Dob:            Date{e.Dob},
		Gender:         e.Gender,
		Email:          e.Email,
		Phone:          e.Phone,
		EmploymentType: e.EmploymentType,
		Department:     e.Department,
		JobTitle:       e.JobTitle,
		Salary:         e.Salary,
		Address:        e.Address,
		Skills:         e.Skills,
		EducationLevel: e.EducationLevel,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

type Response struct {
	EmployeeId     string    `json:"employeeId"`
	Name           string    `json:"name"`
	Dob            Date      `json:"dob"`
	Gender         string    `json:"gender"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	EmploymentType string    `json:"employmentType"`
	Department     string    `json:"department"`
	JobTitle       string    `json:"jobTitle"`
	Salary         float64   `json:"salary"`
	Address        string    `json:"address"`
	Skills         []string  `json:"skills"`
	EducationLevel string    `json:"educationLevel"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
} // @name EmployeeResponse

// Date дата без времени суток. В JSON принимает как "2006-01-02",
// так и полный формат RFC3339, отдаёт всегда "2006-01-02".
type Date struct {
	time.Time
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return json.Marshal("")
	}
	return json.Marshal(d.Format("2006-01-02"))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == "" {
		d.Time = time.Time{}
		return nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			d.Time = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("invalid date format: %q", raw)
}

// Skills упорядоченный список навыков. В JSON принимает либо массив строк,
// либо одну строку со значениями через запятую.
type Skills []string

func (s *Skills) UnmarshalJSON(data []byte) error {
	var asList []string
	if err := json.Unmarshal(data, &asList); err == nil {
		*s = normalizeSkills(asList)
		return nil
	}
	var asString string
	if err := json.Unmarshal(data, &asString); err != nil {
		return fmt.Errorf("skills must be a string or an array of strings")
	}
	*s = normalizeSkills(strings.Split(asString, ","))
	return nil
}

// нормализация: обрезаем пробелы, пустые значения отбрасываем
func normalizeSkills(raw []string) []string {
	var skills []string
	for _, skill := range raw {
		if trimmed := strings.TrimSpace(skill); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	return skills
}

type CreateRequest struct {
	Name           string  `json:"name" validate:"required,min=2,max=155"`
	Dob            Date    `json:"dob" validate:"required"`
	Gender         string  `json:"gender" validate:"required,oneof=male female other"`
	Email          string  `json:"email" validate:"required,email"`
	Phone          string  `json:"phone" validate:"required"`
	EmploymentType string  `json:"employmentType" validate:"required,oneof=full-time part-time intern contract"`
	Department     string  `json:"department" validate:"required"`
	JobTitle       string  `json:"jobTitle" validate:"required"`
	Salary         float64 `json:"salary" validate:"required,gte=0"`
	Address        string  `json:"address" validate:"required"`
	Skills         Skills  `json:"skills" validate:"required,min=1,dive,required"`
	EducationLevel string  `json:"educationLevel" validate:"required,oneof=highSchool associate bachelor master doctorate other"`
} // @name CreateEmployeeRequest

func (req *CreateRequest) ToEntity() Entity {
	return Entity{
		Name:           req.Name,
		Dob:            req.Dob.Time,
		Gender:         req.Gender,
		Email:          req.Email,
		Phone:          req.Phone,
		EmploymentType: req.EmploymentType,
		Department:     req.Department,
		JobTitle:       req.JobTitle,
		Salary:         req.Salary,
		Address:        req.Address,
		Skills:         req.Skills,
		EducationLevel: req.EducationLevel,
	}
}

// UpdateRequest запрос на частичное обновление сотрудника.
// Незаполненные (нулевые) поля оставляют прежние значения: в частности,
// salary = 0 неотличим от "зарплата не передана" и сохранённое значение
// не меняется. Это унаследованное поведение, закреплённое контрактом.
// Пустой массив skills также трактуется как "не передано" и не очищает
// сохранённые навыки: skills сотрудника по модели данных не бывают пустыми.
type UpdateRequest struct {
	Name           string  `json:"name" validate:"omitempty,min=2,max=155"`
	Dob            Date    `json:"dob"`
	Gender         string  `json:"gender" validate:"omitempty,oneof=male female other"`
	Email          string  `json:"email" validate:"omitempty,email"`
	Phone          string  `json:"phone"`
	EmploymentType string  `json:"employmentType" validate:"omitempty,oneof=full-time part-time intern contract"`
	Department     string  `json:"department"`
	JobTitle       string  `json:"jobTitle"`
	Salary         float64 `json:"salary" validate:"omitempty,gte=0"`
	Address        string  `json:"address"`
	Skills         Skills  `json:"skills" validate:"omitempty,dive,required"`
	EducationLevel string  `json:"educationLevel" validate:"omitempty,oneof=highSchool associate bachelor master doctorate other"`
} // @name UpdateEmployeeRequest

// применяет заполненные поля запроса к сущности
func (req *UpdateRequest) applyTo(entity *Entity) {
	if req.Name != "" {
		entity.Name = req.Name
	}
	if !req.Dob.IsZero() {
		entity.Dob = req.Dob.Time
	}
	if req.Gender != "" {
		entity.Gender = req.Gender
	}
	if req.Email != "" {
		entity.Email = req.Email
	}
	if req.Phone != "" {
		entity.Phone = req.Phone
	}
	if req.EmploymentType != "" {
		entity.EmploymentType = req.EmploymentType
	}
	if req.Department != "" {
		entity.Department = req.Department
	}
	if req.JobTitle != "" {
		entity.JobTitle = req.JobTitle
	}
	if req.Salary != 0 {
		entity.Salary = req.Salary
	}
	if req.Address != "" {
		entity.Address = req.Address
	}
	if len(req.Skills) != 0 {
		entity.Skills = req.Skills
	}
	if req.EducationLevel != "" {
		entity.EducationLevel = req.EducationLevel
	}
}

// PageRequest параметры списка сотрудников
type PageRequest struct {
	Search      string `query:"search"`
	Departments string `query:"departments"`
	Roles       string `query:"roles"`
	Page        int    `query:"page"`
	Limit       int    `query:"limit"`
} // @name PageRequest

// PageResponse страница списка сотрудников
type PageResponse struct {
	Data           []Response `json:"data"`
	CurrentPage    int        `json:"currentPage"`
	TotalPages     int        `json:"totalPages"`
	TotalEmployees int64      `json:"totalEmployees"`
} // @name PageResponse
