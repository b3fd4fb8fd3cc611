package services_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yungbote/learncards-backend/internal/apierr"
	"github.com/yungbote/learncards-backend/internal/repos"
	"github.com/yungbote/learncards-backend/internal/repos/testutil"
	"github.com/yungbote/learncards-backend/internal/services"
	"github.com/yungbote/learncards-backend/internal/types"
)

func seedOneCard(t *testing.T) (services.CardService, *types.Card) {
	t.Helper()
	ctx := context.Background()
	db := testutil.NewDB(t)
	log := testutil.Logger(t)
	topicRepo := repos.NewTopicRepo(db, log)
	cardRepo := repos.NewCardRepo(db, log)

	topicSvc := services.NewTopicService(db, log, topicRepo, cardRepo)
	_, cards, err := topicSvc.CreateWithCards(ctx, "Git rebase", []string{types.CardTypeQuiz})
	require.NoError(t, err)
	require.Len(t, cards, 1)

	return services.NewCardService(db, log, cardRepo), cards[0]
}

func TestCardService_Update_ContentOnly(t *testing.T) {
	ctx := context.Background()
	svc, card := seedOneCard(t)

	content := "rewritten"
	updated, err := svc.Update(ctx, card.ID, nil, &content)
	require.NoError(t, err)
	require.Equal(t, "rewritten", updated.Content)
	require.Equal(t, types.CardTypeQuiz, updated.CardType)
}

func TestCardService_Update_TypeOnly(t *testing.T) {
	ctx := context.Background()
	svc, card := seedOneCard(t)

	newType := types.CardTypeSummary
	updated, err := svc.Update(ctx, card.ID, &newType, nil)
	require.NoError(t, err)
	require.Equal(t, types.CardTypeSummary, updated.CardType)
	require.Equal(t, card.Content, updated.Content)
}

func TestCardService_Update_NothingProvided(t *testing.T) {
	ctx := context.Background()
	svc, card := seedOneCard(t)

	updated, err := svc.Update(ctx, card.ID, nil, nil)
	require.NoError(t, err)
	require.Equal(t, card.CardType, updated.CardType)
	require.Equal(t, card.Content, updated.Content)
}

func TestCardService_Update_InvalidType(t *testing.T) {
	ctx := context.Background()
	svc, card := seedOneCard(t)

	bogus := "poem"
	_, err := svc.Update(ctx, card.ID, &bogus, nil)
	var ae *apierr.Error
	require.ErrorAs(t, err, &ae)
	require.Equal(t, http.StatusBadRequest, ae.Status)
	require.Equal(t, "invalid_card_type", ae.Code)

	// The card itself must be untouched.
	unchanged, err := svc.Update(ctx, card.ID, nil, nil)
	require.NoError(t, err)
	require.Equal(t, card.CardType, unchanged.CardType)
}

func TestCardService_Update_NotFound(t *testing.T) {
	ctx := context.Background()
	svc, _ := seedOneCard(t)

	content := "x"
	_, err := svc.Update(ctx, 99999, nil, &content)
	var ae *apierr.Error
	require.ErrorAs(t, err, &ae)
	require.Equal(t, http.StatusNotFound, ae.Status)
	require.Equal(t, "card_not_found", ae.Code)
}

func TestCardService_Delete_Twice(t *testing.T) {
	ctx := context.Background()
	svc, card := seedOneCard(t)

	require.NoError(t, svc.Delete(ctx, card.ID))

	err := svc.Delete(ctx, card.ID)
	var ae *apierr.Error
	require.ErrorAs(t, err, &ae)
	require.Equal(t, http.StatusNotFound, ae.Status)
}

func TestCardService_List_InvalidType(t *testing.T) {
	ctx := context.Background()
	svc, _ := seedOneCard(t)

	bogus := "poem"
	_, err := svc.List(ctx, &bogus)
	var ae *apierr.Error
	require.ErrorAs(t, err, &ae)
	require.Equal(t, http.StatusBadRequest, ae.Status)
}

func TestCardService_List_Filter(t *testing.T) {
	ctx := context.Background()
	svc, card := seedOneCard(t)

	quiz := types.CardTypeQuiz
	cards, err := svc.List(ctx, &quiz)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	require.Equal(t, card.ID, cards[0].ID)

	task := types.CardTypeTask
	cards, err = svc.List(ctx, &task)
	require.NoError(t, err)
	require.Empty(t, cards)
}
