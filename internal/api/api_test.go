package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graretg02/Superbowl-app2/internal/api"
	"github.com/graretg02/Superbowl-app2/internal/api/apierr"
	"github.com/graretg02/Superbowl-app2/internal/api/response"
	"github.com/graretg02/Superbowl-app2/internal/factory"
	"github.com/graretg02/Superbowl-app2/internal/model"
	"github.com/graretg02/Superbowl-app2/internal/services/analysis"
	"github.com/graretg02/Superbowl-app2/internal/services/persistence"
	"github.com/graretg02/Superbowl-app2/internal/testutil"
)

// testServer creates a test server with all dependencies
type testServer struct {
	handler http.Handler
	app     *factory.TestApp
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	app := factory.NewTestApp()
	router := api.NewRouter(api.RouterConfig{
		Logger:         testutil.NopLogger(),
		GameController: app.GameController,
	})

	return &testServer{
		handler: router,
		app:     app,
	}
}

func (ts *testServer) request(method, path string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v))
	return v
}

func errorCode(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[apierr.ErrorResponse](t, rr).Error.Code
}

func (ts *testServer) addParticipant(t *testing.T, first, last string) response.Participant {
	t.Helper()
	rr := ts.request(http.MethodPost, "/api/v1/participants", map[string]string{"first_name": first, "last_name": last})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	return decode[response.AddParticipantResponse](t, rr).Participant
}

func (ts *testServer) fillBoard(t *testing.T) {
	t.Helper()
	ts.addParticipant(t, "Alice", "Smith")
	for row := 0; row < model.GridSize; row++ {
		for col := 0; col < model.GridSize; col++ {
			rr := ts.request(http.MethodPost, fmt.Sprintf("/api/v1/cells/%d/%d/toggle", row, col), nil)
			require.Equal(t, http.StatusOK, rr.Code)
		}
	}
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
	assert.Equal(t, "no-store", rr.Header().Get("Cache-Control"))
	assert.Contains(t, rr.Header().Get("Content-Type"), "application/json")
}

func TestGetDefaultBoard(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/board", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	board := decode[response.Board](t, rr)
	assert.Empty(t, board.Participants)
	assert.Len(t, board.Grid, model.GridSize)
	assert.Len(t, board.RowNumbers, model.GridSize)
	assert.Nil(t, board.RowNumbers[0])
	assert.Equal(t, model.DefaultTeam1, board.Team1)
	assert.Equal(t, model.DefaultTeam2, board.Team2)
	assert.False(t, board.IsLocked)
	assert.Equal(t, 100, board.RemainingCount)
	assert.Nil(t, board.ActiveParticipantID)
	assert.Equal(t, "grid", board.View)
	assert.Equal(t, "idle", board.SaveStatus)
}

func TestAddParticipant(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/participants", map[string]string{"first_name": "alice", "last_name": "smith"})
	require.Equal(t, http.StatusCreated, rr.Code)

	resp := decode[response.AddParticipantResponse](t, rr)
	assert.Equal(t, "alice", resp.Participant.FirstName)
	assert.Equal(t, "AS", resp.Participant.Initials)
	assert.Equal(t, model.Palette[0], resp.Participant.Color)
	require.NotNil(t, resp.Board.ActiveParticipantID)
	assert.Equal(t, resp.Participant.ID, *resp.Board.ActiveParticipantID)
	assert.Equal(t, "saving", resp.Board.SaveStatus)
}

func TestAddParticipantValidation(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/participants", map[string]string{"first_name": "Alice"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeInvalidRequest, errorCode(t, rr))

	rr = ts.request(http.MethodPost, "/api/v1/participants", map[string]string{"first_name": "  ", "last_name": "Smith"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeInvalidName, errorCode(t, rr))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/participants", bytes.NewBufferString("{"))
	rr = httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestToggleScenario(t *testing.T) {
	ts := newTestServer(t)
	ts.addParticipant(t, "Alice", "Smith")
	bob := ts.addParticipant(t, "Bob", "Jones")

	rr := ts.request(http.MethodPost, "/api/v1/cells/3/4/toggle", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	board := decode[response.Board](t, rr)
	require.NotNil(t, board.Grid[3][4])
	assert.Equal(t, bob.ID, *board.Grid[3][4])
	assert.Equal(t, 1, board.Participants[1].SquareCount)

	rr = ts.request(http.MethodPost, "/api/v1/cells/3/4/toggle", nil)
	board = decode[response.Board](t, rr)
	assert.Nil(t, board.Grid[3][4])
}

func TestToggleOutOfRange(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/cells/10/0/toggle", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeInvalidPosition, errorCode(t, rr))

	rr = ts.request(http.MethodPost, "/api/v1/cells/x/0/toggle", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSetActiveParticipant(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.addParticipant(t, "Alice", "Smith")
	ts.addParticipant(t, "Bob", "Jones")

	rr := ts.request(http.MethodPut, "/api/v1/active", map[string]string{"participant_id": alice.ID})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, alice.ID, *decode[response.Board](t, rr).ActiveParticipantID)

	rr = ts.request(http.MethodPut, "/api/v1/active", map[string]string{"participant_id": ""})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Nil(t, decode[response.Board](t, rr).ActiveParticipantID)

	rr = ts.request(http.MethodPut, "/api/v1/active", map[string]string{"participant_id": "ghost"})
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, apierr.CodeParticipantNotFound, errorCode(t, rr))
}

func TestRemoveParticipant(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.addParticipant(t, "Alice", "Smith")
	ts.request(http.MethodPost, "/api/v1/cells/0/0/toggle", nil)

	rr := ts.request(http.MethodDelete, "/api/v1/participants/"+alice.ID, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	board := decode[response.Board](t, rr)
	assert.Empty(t, board.Participants)
	assert.Nil(t, board.Grid[0][0])
	assert.Nil(t, board.ActiveParticipantID)

	rr = ts.request(http.MethodDelete, "/api/v1/participants/"+alice.ID, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRandomizeRequiresFullGrid(t *testing.T) {
	ts := newTestServer(t)
	ts.addParticipant(t, "Alice", "Smith")

	rr := ts.request(http.MethodPost, "/api/v1/randomize", nil)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, apierr.CodeGridNotFull, errorCode(t, rr))
}

func TestRandomizeLockAndUnlock(t *testing.T) {
	ts := newTestServer(t)
	ts.fillBoard(t)

	rr := ts.request(http.MethodPost, "/api/v1/randomize", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	board := decode[response.Board](t, rr)
	assert.True(t, board.IsLocked)
	for _, n := range board.RowNumbers {
		assert.NotNil(t, n)
	}

	// Locked boards reject edits and a second draw
	rr = ts.request(http.MethodPost, "/api/v1/randomize", nil)
	assert.Equal(t, apierr.CodeBoardLocked, errorCode(t, rr))
	rr = ts.request(http.MethodPost, "/api/v1/cells/0/0/toggle", nil)
	assert.Equal(t, apierr.CodeBoardLocked, errorCode(t, rr))
	rr = ts.request(http.MethodDelete, "/api/v1/participants/"+board.Participants[0].ID, nil)
	assert.Equal(t, apierr.CodeBoardLocked, errorCode(t, rr))

	rr = ts.request(http.MethodPost, "/api/v1/unlock", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	unlocked := decode[response.Board](t, rr)
	assert.False(t, unlocked.IsLocked)
	assert.Nil(t, unlocked.RowNumbers[0])
	assert.Equal(t, board.Grid, unlocked.Grid)
	assert.Equal(t, board.Participants, unlocked.Participants)
}

func TestUnlockUnlockedBoard(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/unlock", nil)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, apierr.CodeBoardNotLocked, errorCode(t, rr))
}

func TestReset(t *testing.T) {
	ts := newTestServer(t)
	ts.addParticipant(t, "Alice", "Smith")
	ts.request(http.MethodPut, "/api/v1/teams/team1", map[string]string{"name": "Chiefs"})

	rr := ts.request(http.MethodPost, "/api/v1/reset", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	board := decode[response.Board](t, rr)
	assert.Empty(t, board.Participants)
	assert.Equal(t, model.DefaultTeam1, board.Team1)
	assert.Nil(t, board.ActiveParticipantID)
}

func TestTeams(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPut, "/api/v1/teams/team2", map[string]string{"name": "Eagles"})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Eagles", decode[response.Board](t, rr).Team2)

	rr = ts.request(http.MethodPut, "/api/v1/teams/team3", map[string]string{"name": "Eagles"})
	assert.Equal(t, apierr.CodeInvalidTeam, errorCode(t, rr))

	rr = ts.request(http.MethodGet, "/api/v1/teams/presets", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	presets := decode[[]response.TeamPreset](t, rr)
	assert.Len(t, presets, len(model.TeamPresets))
	assert.Equal(t, "KC Chiefs", presets[2].Name)
}

func TestSetView(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPut, "/api/v1/view", map[string]string{"view": "settings"})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "settings", decode[response.Board](t, rr).View)

	rr = ts.request(http.MethodPut, "/api/v1/view", map[string]string{"view": "stats"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestTransferRoundTrip(t *testing.T) {
	ts := newTestServer(t)
	ts.fillBoard(t)
	ts.request(http.MethodPost, "/api/v1/randomize", nil)
	before := decode[response.Board](t, ts.request(http.MethodGet, "/api/v1/board", nil))

	rr := ts.request(http.MethodGet, "/api/v1/transfer", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	code := decode[response.TransferCode](t, rr).Code
	assert.NotEmpty(t, code)

	other := newTestServer(t)
	rr = other.request(http.MethodPost, "/api/v1/transfer", map[string]string{"code": code})
	require.Equal(t, http.StatusOK, rr.Code)

	after := decode[response.Board](t, rr)
	assert.Equal(t, before.Grid, after.Grid)
	assert.Equal(t, before.RowNumbers, after.RowNumbers)
	assert.Equal(t, before.ColNumbers, after.ColNumbers)
	assert.True(t, after.IsLocked)
}

func TestImportInvalidCode(t *testing.T) {
	ts := newTestServer(t)
	ts.addParticipant(t, "Alice", "Smith")

	rr := ts.request(http.MethodPost, "/api/v1/transfer", map[string]string{"code": "not valid base64 or json"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeInvalidCode, errorCode(t, rr))

	board := decode[response.Board](t, ts.request(http.MethodGet, "/api/v1/board", nil))
	assert.Len(t, board.Participants, 1)
}

func TestAnalysis(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/analysis", nil)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, apierr.CodeBoardNotLocked, errorCode(t, rr))

	ts.fillBoard(t)
	ts.request(http.MethodPost, "/api/v1/randomize", nil)

	rr = ts.request(http.MethodPost, "/api/v1/analysis", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, ts.app.MockGenerator.Text, decode[response.Analysis](t, rr).Text)

	board := decode[response.Board](t, ts.request(http.MethodGet, "/api/v1/board", nil))
	assert.Equal(t, ts.app.MockGenerator.Text, board.Analysis)
}

func TestAnalysisFailureUsesFallback(t *testing.T) {
	ts := newTestServer(t)
	ts.fillBoard(t)
	ts.request(http.MethodPost, "/api/v1/randomize", nil)
	ts.app.MockGenerator.SetResponse("", fmt.Errorf("quota exhausted"))

	rr := ts.request(http.MethodPost, "/api/v1/analysis", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, analysis.FallbackText, decode[response.Analysis](t, rr).Text)
}

func TestSaveStatusAfterQuietPeriod(t *testing.T) {
	ts := newTestServer(t)
	ts.addParticipant(t, "Alice", "Smith")

	ts.app.SettleSaves()

	board := decode[response.Board](t, ts.request(http.MethodGet, "/api/v1/board", nil))
	assert.Equal(t, "saved", board.SaveStatus)
	assert.NotNil(t, board.LastSavedAt)
	assert.Equal(t, 1, ts.app.MemoryStorage.WriteCount(persistence.StateKey))
}
