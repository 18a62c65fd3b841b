package db

import (
	"github.com/jsphweid/cadence/constants"
	"github.com/jsphweid/cadence/model"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
)

// GetScoreMetadatas batch-fetches title/composer/copyright records
// keyed by filename. Only filenames with a record appear in the result.
func GetScoreMetadatas(filenames []string) map[string]model.Metadata {
	if len(filenames) > 10 {
		panic("Not supposed to pass in more than 10 filenames!")
	}

	res := make(map[string]model.Metadata)

	if len(filenames) == 0 {
		return res
	}

	var keys []map[string]*dynamodb.AttributeValue
	for _, filename := range filenames {
		key := make(map[string]*dynamodb.AttributeValue)
		key["PK"] = &dynamodb.AttributeValue{
			S: aws.String(filename),
		}
		keys = append(keys, key)
	}

	endpoint := constants.GetMetadataEndpoint()
	session, err := session.NewSession(&aws.Config{
		Region:   aws.String("localhost"),
		Endpoint: &endpoint,
	})
	if err != nil {
		panic("Could not create a new DynamoDB session because " + err.Error())
	}

	table := constants.GetMetadataTable()
	client := dynamodb.New(session)
	input := &dynamodb.BatchGetItemInput{
		RequestItems: map[string]*dynamodb.KeysAndAttributes{
			table: {Keys: keys},
		},
	}
	dbres, err := client.BatchGetItem(input)
	if err != nil {
		panic("Error from DynamoDB: " + err.Error())
	}

	for _, v := range dbres.Responses[table] {
		var m model.Metadata
		if v["Title"] != nil && v["Title"].S != nil {
			m.Title = *v["Title"].S
		}
		if v["Composer"] != nil && v["Composer"].S != nil {
			m.Composer = *v["Composer"].S
		}
		if v["Copyright"] != nil && v["Copyright"].S != nil {
			m.Copyright = *v["Copyright"].S
		}
		res[*v["PK"].S] = m
	}

	return res
}
