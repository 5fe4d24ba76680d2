package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"

	"docgraph/backend/pkg/apperr"
)

func TestMapError_Nil(t *testing.T) {
	assert.NoError(t, MapError(nil))
}

func TestMapError_PassesThroughAppErrors(t *testing.T) {
	orig := apperr.NotFound("Document", "doc-1")
	assert.Equal(t, orig, MapError(orig))

	wrapped := apperr.ReferentialPrecondition("missing folder")
	assert.Equal(t, wrapped, MapError(wrapped))
}

func TestMapError_ConstraintViolation(t *testing.T) {
	err := &neo4j.Neo4jError{
		Code: "Neo.ClientError.Schema.ConstraintValidationFailed",
		Msg:  "Node already exists",
	}

	mapped := MapError(err)
	assert.True(t, apperr.IsDuplicateKey(mapped))
	assert.True(t, errors.Is(mapped, err))
}

func TestMapError_WrappedConstraintViolation(t *testing.T) {
	cause := &neo4j.Neo4jError{
		Code: "Neo.ClientError.Schema.ConstraintValidationFailed",
		Msg:  "Node already exists",
	}
	// transaction steps annotate failures before they reach the mapper
	wrapped := fmt.Errorf("create document: %w", cause)

	mapped := MapError(wrapped)
	assert.True(t, apperr.IsDuplicateKey(mapped))
	assert.True(t, errors.Is(mapped, cause))
}

func TestMapError_OtherNeo4jErrorsUnchanged(t *testing.T) {
	err := &neo4j.Neo4jError{
		Code: "Neo.ClientError.Statement.SyntaxError",
		Msg:  "bad cypher",
	}

	assert.Equal(t, error(err), MapError(err))
}

func TestMapError_UnknownErrorUnchanged(t *testing.T) {
	err := errors.New("something else")
	assert.Equal(t, err, MapError(err))
}
