package form

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/google/uuid"
	"github.com/guregu/dynamo/v2"
)

// submissionRow is the DynamoDB representation of a Submission.
type submissionRow struct {
	Uuid      string         `dynamo:"uuid,hash"` // Primary key
	FormType  string         `dynamo:"form_type"`
	Fields    map[string]any `dynamo:"fields"`
	CreatedAt time.Time      `dynamo:"created_at"`
}

// DynamoDbSubmTable is a SubmissionRepo backed by one DynamoDB table.
// The dynamodb client is constructed once at the composition root and
// shared by every table wrapper.
type DynamoDbSubmTable struct {
	ddbClient *dynamodb.Client
	tableName string
	submTable *dynamo.Table
}

// NewDynamoDbSubmTable initializes a table wrapper for one form type.
func NewDynamoDbSubmTable(ddbClient *dynamodb.Client, tableName string) *DynamoDbSubmTable {
	ddb := &DynamoDbSubmTable{
		ddbClient: ddbClient,
		tableName: tableName,
	}
	db := dynamo.NewFromIface(ddb.ddbClient)
	table := db.Table(ddb.tableName)
	ddb.submTable = &table

	return ddb
}

// FindByAny scans for a record whose fields match any one of the keys.
// The tables hold at most a few thousand small records, so a filtered
// scan is acceptable here.
func (ddb *DynamoDbSubmTable) FindByAny(ctx context.Context, keys []UniqueKey) (*Submission, error) {
	if len(keys) == 0 {
		return nil, nil
	}

	exprParts := make([]string, 0, len(keys))
	args := make([]any, 0, len(keys))
	for _, key := range keys {
		exprParts = append(exprParts, fmt.Sprintf("'fields'.'%s' = ?", key.Field))
		args = append(args, key.Value)
	}

	var rows []submissionRow
	err := ddb.submTable.Scan().
		Filter(strings.Join(exprParts, " OR "), args...).
		All(ctx, &rows)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	return rows[0].toSubmission()
}

// Insert writes a new submission row. The uuid condition guards against
// the (practically impossible) key collision.
func (ddb *DynamoDbSubmTable) Insert(ctx context.Context, subm Submission) error {
	row := submissionRow{
		Uuid:      subm.Uuid.String(),
		FormType:  string(subm.FormType),
		Fields:    subm.Fields,
		CreatedAt: subm.CreatedAt,
	}

	put := ddb.submTable.Put(row).If("attribute_not_exists('uuid')")
	return put.Run(ctx)
}

func (row submissionRow) toSubmission() (*Submission, error) {
	id, err := uuid.Parse(row.Uuid)
	if err != nil {
		return nil, fmt.Errorf("parse submission uuid %q: %w", row.Uuid, err)
	}
	return &Submission{
		Uuid:      id,
		FormType:  FormType(row.FormType),
		Fields:    Fields(row.Fields),
		CreatedAt: row.CreatedAt,
	}, nil
}
