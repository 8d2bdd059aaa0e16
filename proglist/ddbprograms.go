package proglist

import (
	"context"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/guregu/dynamo/v2"
)

// DegreeProgramRow is the DynamoDB shape of a catalog entry.
type DegreeProgramRow struct {
	Code string `dynamo:"code,hash"` // Primary key
	Name string `dynamo:"name"`
}

// DdbProgramTable serves the degree-program catalog from a DynamoDB table.
type DdbProgramTable struct {
	ddbClient     *dynamodb.Client
	tableName     string
	programsTable *dynamo.Table
}

func NewDdbProgramTable(ddbClient *dynamodb.Client, tableName string) *DdbProgramTable {
	ddb := &DdbProgramTable{
		ddbClient: ddbClient,
		tableName: tableName,
	}
	db := dynamo.NewFromIface(ddb.ddbClient)
	table := db.Table(ddb.tableName)
	ddb.programsTable = &table

	return ddb
}

// ListDegreePrograms implements Lister. Scans are unordered, so rows are
// sorted by code to keep the presentation order stable between calls.
func (ddb *DdbProgramTable) ListDegreePrograms(ctx context.Context) ([]DegreeProgram, error) {
	var rows []DegreeProgramRow
	err := ddb.programsTable.Scan().All(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan degree programs: %w", err)
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Code < rows[j].Code
	})

	programs := make([]DegreeProgram, len(rows))
	for i, row := range rows {
		programs[i] = DegreeProgram{Code: row.Code, Name: row.Name}
	}

	return programs, nil
}
