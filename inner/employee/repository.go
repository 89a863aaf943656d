package employee

import (
	"context"
	"time"

	"github.com/pranavyadav41/Dashboard-server/inner/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Repository struct {
	collection *mongo.Collection
}

func NewEmployeeRepository(db *mongo.Database) *Repository {
	return &Repository{collection: db.Collection(database.EmployeeCollection)}
}

func (r *Repository) FindByEmployeeId(ctx context.Context, employeeId string) (employee Entity, err error) {
	err = r.collection.FindOne(ctx, bson.M{"employeeId": employeeId}).Decode(&employee)
	return employee, err
}

func (r *Repository) ExistsByEmployeeId(ctx context.Context, employeeId string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"employeeId": employeeId}, options.Count().SetLimit(1))
	return count > 0, err
}

// ExistsByEmail проверяет занятость email. Непустой excludeEmployeeId
// исключает из проверки собственную запись сотрудника.
func (r *Repository) ExistsByEmail(ctx context.Context, email string, excludeEmployeeId string) (bool, error) {
	filter := bson.M{"email": email}
	if excludeEmployeeId != "" {
		filter["employeeId"] = bson.M{"$ne": excludeEmployeeId}
	}
	count, err := r.collection.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	return count > 0, err
}

func (r *Repository) Insert(ctx context.Context, employee *Entity) error {
	now := time.Now().UTC()
	employee.CreatedAt = now
	employee.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, employee)
	if err != nil {
		return err
	}
	if insertedId, ok := result.InsertedID.(primitive.ObjectID); ok {
		employee.Id = insertedId
	}
	return nil
}

// Save перезаписывает документ сотрудника по его employeeId
func (r *Repository) Save(ctx context.Context, employee *Entity) error {
	employee.UpdatedAt = time.Now().UTC()
	_, err := r.collection.ReplaceOne(ctx, bson.M{"employeeId": employee.EmployeeId}, employee)
	return err
}

// DeleteByEmployeeId удаляет сотрудника; false - записи не было
func (r *Repository) DeleteByEmployeeId(ctx context.Context, employeeId string) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"employeeId": employeeId})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}

// FindWithFilter возвращает срез страницы по фильтру.
// Порядок стабильный: createdAt, затем _id как разрешение ничьих,
// чтобы пагинация была детерминированной между вызовами.
func (r *Repository) FindWithFilter(ctx context.Context, filter bson.M, skip int64, limit int64) ([]Entity, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer func() { _ = cursor.Close(ctx) }()

	var employees []Entity
	if err := cursor.All(ctx, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *Repository) Count(ctx context.Context, filter bson.M) (int64, error) {
	return r.collection.CountDocuments(ctx, filter)
}
