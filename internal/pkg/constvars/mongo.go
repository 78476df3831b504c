package constvars

const (
	MongoCollectionEvaluationCriteria = "evaluation_criteria"
)
