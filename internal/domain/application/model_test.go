package application

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterFindDropsEmptyEvaluation(t *testing.T) {
	// A never-evaluated draft reads back with zero-valued embedded
	// columns; the hook must strip them so the JSON stays clean.
	app := Application{Status: StatusDraft, AIEvaluation: &Evaluation{}}
	require.NoError(t, app.AfterFind(nil))
	assert.Nil(t, app.AIEvaluation)

	raw, err := json.Marshal(app)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "ai_evaluation")
}

func TestAfterFindKeepsRealEvaluation(t *testing.T) {
	now := time.Now()
	app := Application{
		Status:       StatusSubmitted,
		AIEvaluation: &Evaluation{Score: 82, Feedback: "solid", EvaluatedAt: &now},
	}
	require.NoError(t, app.AfterFind(nil))
	require.NotNil(t, app.AIEvaluation)
	assert.Equal(t, 82, app.AIEvaluation.Score)
}

func TestEvaluationPresent(t *testing.T) {
	var e *Evaluation
	assert.False(t, e.Present())
	assert.False(t, (&Evaluation{}).Present())

	now := time.Now()
	assert.True(t, (&Evaluation{EvaluatedAt: &now}).Present())
}
