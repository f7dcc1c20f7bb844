package applicationhandler

import (
	"testing"

	"github.com/stretchr/testify/require"

	dbmodels "ats-backend/models/db"
)

type stubApplicationStore struct {
	listCalls   []dbmodels.ApplicationFilter
	listAnswers []dbmodels.Application
}

func (s *stubApplicationStore) Create(rec dbmodels.Application) (string, error) { return "", nil }
func (s *stubApplicationStore) GetByID(id string) (*dbmodels.Application, error) {
	return nil, nil
}
func (s *stubApplicationStore) Update(id string, updMap map[string]interface{}) error { return nil }
func (s *stubApplicationStore) DeleteByJobID(jobID string) error                      { return nil }
func (s *stubApplicationStore) List(filter dbmodels.ApplicationFilter) ([]dbmodels.Application, int64, error) {
	s.listCalls = append(s.listCalls, filter)
	return s.listAnswers, int64(len(s.listAnswers)), nil
}
func (s *stubApplicationStore) ListAllByJob(jobID string) ([]dbmodels.Application, error) {
	return s.listAnswers, nil
}
func (s *stubApplicationStore) ListStatuses(jobID string) ([]string, error) { return nil, nil }

func TestListTabFilter(t *testing.T) {
	t.Run(`unknown tab answers the empty set without a query check`, func(t *testing.T) {
		store := &stubApplicationStore{listAnswers: []dbmodels.Application{{Status: "applied"}}}
		handler := impl{store: store}

		list, rowCount, err := handler.List(dbmodels.ApplicationFilter{Tab: "no_such_tab"})
		require.NoError(t, err)
		require.Empty(t, list)
		require.Equal(t, int64(0), rowCount)
		require.Empty(t, store.listCalls)
	})

	t.Run(`known tab narrows to its bucket check`, func(t *testing.T) {
		store := &stubApplicationStore{}
		handler := impl{store: store}

		_, _, err := handler.List(dbmodels.ApplicationFilter{Tab: "screening"})
		require.NoError(t, err)
		require.Len(t, store.listCalls, 1)
		require.Equal(t, "screening", store.listCalls[0].Status)
	})

	t.Run(`all tab passes through unfiltered check`, func(t *testing.T) {
		store := &stubApplicationStore{}
		handler := impl{store: store}

		_, _, err := handler.List(dbmodels.ApplicationFilter{Tab: "all"})
		require.NoError(t, err)
		require.Len(t, store.listCalls, 1)
		require.Equal(t, "", store.listCalls[0].Status)
	})

	t.Run(`explicit status wins over tab check`, func(t *testing.T) {
		store := &stubApplicationStore{}
		handler := impl{store: store}

		_, _, err := handler.List(dbmodels.ApplicationFilter{Tab: "screening", Status: "hired"})
		require.NoError(t, err)
		require.Len(t, store.listCalls, 1)
		require.Equal(t, "hired", store.listCalls[0].Status)
	})
}

func TestShouldNotifyStatusChange(t *testing.T) {
	t.Run(`stage move triggers notification check`, func(t *testing.T) {
		require.Equal(t, true, ShouldNotifyStatusChange("applied", "under_review"))
		require.Equal(t, true, ShouldNotifyStatusChange("interview_1", "interview_2"))
		require.Equal(t, true, ShouldNotifyStatusChange("offer_made", "rejected"))
	})

	t.Run(`synonym churn inside one stage is silent check`, func(t *testing.T) {
		require.Equal(t, false, ShouldNotifyStatusChange("interview_1", "first_interview"))
		require.Equal(t, false, ShouldNotifyStatusChange("under_review", "screening"))
		require.Equal(t, false, ShouldNotifyStatusChange("hired", "onboarding"))
		require.Equal(t, false, ShouldNotifyStatusChange("applied", "submitted"))
	})

	t.Run(`unknown raw values land in applied check`, func(t *testing.T) {
		require.Equal(t, false, ShouldNotifyStatusChange("some_legacy_value", "applied"))
		require.Equal(t, true, ShouldNotifyStatusChange("some_legacy_value", "hired"))
	})

	t.Run(`case and spacing do not matter check`, func(t *testing.T) {
		require.Equal(t, false, ShouldNotifyStatusChange("Applied", " applied "))
		require.Equal(t, true, ShouldNotifyStatusChange("APPLIED", "Hired"))
	})
}
