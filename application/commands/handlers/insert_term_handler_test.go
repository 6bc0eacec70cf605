package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/oorlinsky/conceptual-server-graph/application/commands"
	apperrors "github.com/oorlinsky/conceptual-server-graph/pkg/errors"
	"github.com/oorlinsky/conceptual-server-graph/pkg/sparql"
)

const testRoot = "http://example.org/Root"

// fakeStore records submitted documents and returns scripted results.
type fakeStore struct {
	updates   []string
	updateErr error
	queries   []string
	result    *sparql.ResultSet
	selectErr error
}

func (f *fakeStore) Update(_ context.Context, update string) error {
	f.updates = append(f.updates, update)
	return f.updateErr
}

func (f *fakeStore) Select(_ context.Context, query string) (*sparql.ResultSet, error) {
	f.queries = append(f.queries, query)
	if f.selectErr != nil {
		return nil, f.selectErr
	}
	return f.result, nil
}

func TestInsertTermHandler_DefaultsParentToRoot(t *testing.T) {
	store := &fakeStore{}
	handler := NewInsertTermHandler(store, testRoot, zap.NewNop())

	err := handler.Handle(context.Background(), commands.InsertTermCommand{
		TermID: "http://example.org/term/1",
		Label:  "Fruit",
	})
	require.NoError(t, err)

	require.Len(t, store.updates, 1)
	assert.Contains(t, store.updates[0], `<`+testRoot+`> skos:narrower <http://example.org/term/1> .`)
	assert.NotContains(t, store.updates[0], "skos:note")
}

func TestInsertTermHandler_ExplicitParent(t *testing.T) {
	store := &fakeStore{}
	handler := NewInsertTermHandler(store, testRoot, zap.NewNop())

	err := handler.Handle(context.Background(), commands.InsertTermCommand{
		TermID:   "http://example.org/term/2",
		Label:    "Apple",
		Comment:  "A fruit",
		ParentID: "http://example.org/Fruit",
	})
	require.NoError(t, err)

	require.Len(t, store.updates, 1)
	update := store.updates[0]
	assert.Contains(t, update, `<http://example.org/Fruit> skos:narrower <http://example.org/term/2> .`)
	assert.Contains(t, update, `skos:note "A fruit"`)
	assert.NotContains(t, update, testRoot)
}

func TestInsertTermHandler_EmptyLabelNeverReachesStore(t *testing.T) {
	store := &fakeStore{}
	handler := NewInsertTermHandler(store, testRoot, zap.NewNop())

	err := handler.Handle(context.Background(), commands.InsertTermCommand{
		TermID: "http://example.org/term/3",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Empty(t, store.updates, "validation failures must not hit the store")
}

func TestInsertTermHandler_StoreErrorPassedThrough(t *testing.T) {
	store := &fakeStore{updateErr: apperrors.NewUpstreamError(500, "boom")}
	handler := NewInsertTermHandler(store, testRoot, zap.NewNop())

	err := handler.Handle(context.Background(), commands.InsertTermCommand{
		TermID: "http://example.org/term/4",
		Label:  "Fruit",
	})
	require.Error(t, err)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 500, appErr.StoreStatus)
	assert.Equal(t, "boom", appErr.StorePayload)
}
