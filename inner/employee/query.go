package employee

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	defaultPage = 1
	maxPageSize = 100
)

// форма даты поиска: D/M/YYYY (день и месяц 1-2 цифры, год ровно 4)
var searchDateRegex = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)

// buildListFilter собирает фильтр списка сотрудников.
// Итоговый фильтр - AND из трёх необязательных условий:
//   - поисковый текст: подстрока имени без учёта регистра ИЛИ точное
//     совпадение dob, если текст разбирается как дата вида D/M/YYYY;
//   - вхождение department в набор departments;
//   - вхождение jobTitle в набор roles.
//
// Без условий возвращается пустой фильтр "все документы".
func buildListFilter(request PageRequest) bson.M {
	filter := bson.M{}

	if search := strings.TrimSpace(request.Search); search != "" {
		orConditions := []bson.M{
			{"name": primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}},
		}
		// ветка даты добавляется только при валидной форме даты,
		// иначе молча остаётся один поиск по имени
		if dob, ok := parseSearchDate(search); ok {
			orConditions = append(orConditions, bson.M{"dob": dob})
		}
		filter["$or"] = orConditions
	}

	if departments := splitCsv(request.Departments); len(departments) > 0 {
		filter["department"] = bson.M{"$in": departments}
	}

	if roles := splitCsv(request.Roles); len(roles) > 0 {
		filter["jobTitle"] = bson.M{"$in": roles}
	}

	return filter
}

// parseSearchDate разбирает поисковый текст как дату D/M/YYYY,
// нормализованную к полуночи UTC. День ограничен [1,31], месяц [1,12].
func parseSearchDate(text string) (time.Time, bool) {
	matches := searchDateRegex.FindStringSubmatch(text)
	if matches == nil {
		return time.Time{}, false
	}

	// ошибки невозможны: строки уже проверены регулярным выражением
	day, _ := strconv.Atoi(matches[1])
	month, _ := strconv.Atoi(matches[2])
	year, _ := strconv.Atoi(matches[3])

	if day < 1 || day > 31 || month < 1 || month > 12 {
		return time.Time{}, false
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}

// splitCsv разбивает строку со значениями через запятую в набор для $in
func splitCsv(csv string) []string {
	if strings.TrimSpace(csv) == "" {
		return nil
	}
	var values []string
	for _, value := range strings.Split(csv, ",") {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}

// normalizePaging подставляет значения по умолчанию и ограничивает размер
// страницы сверху, чтобы нельзя было запросить неограниченную выборку
func normalizePaging(request PageRequest, defaultLimit int) (page int, limit int) {
	page = request.Page
	if page < 1 {
		page = defaultPage
	}
	limit = request.Limit
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit
}

// totalPages количество страниц с округлением вверх
func totalPages(totalCount int64, limit int) int {
	return int((totalCount + int64(limit) - 1) / int64(limit))
}
