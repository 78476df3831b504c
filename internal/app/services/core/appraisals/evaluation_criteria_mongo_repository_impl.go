package appraisals

import (
	"context"
	"guidingpath-service/internal/app/contracts"
	"guidingpath-service/internal/app/models"
	"guidingpath-service/internal/pkg/constvars"
	"guidingpath-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type EvaluationCriteriaMongoRepository struct {
	Collection *mongo.Collection
}

func NewEvaluationCriteriaMongoRepository(db *mongo.Client, dbName string) contracts.EvaluationCriteriaRepository {
	return &EvaluationCriteriaMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionEvaluationCriteria),
	}
}

func (repo *EvaluationCriteriaMongoRepository) FindAll(ctx context.Context) ([]models.EvaluationCriterion, error) {
	var criteria []models.EvaluationCriterion
	findOptions := options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "minScore", Value: 1}})
	cursor, err := repo.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &criteria)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return criteria, nil
}
