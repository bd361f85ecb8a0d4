package handlers_test

import (
	"net/http"
	"testing"

	"scavenger-hunt-backend/internal/api/handlers"
	"scavenger-hunt-backend/internal/content"
	"scavenger-hunt-backend/internal/repository"
	"scavenger-hunt-backend/internal/service"
	"scavenger-hunt-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// PhaseFlowTestSuite drives the phase endpoints end to end against the
// in-memory backend and the real question banks.
type PhaseFlowTestSuite struct {
	suite.Suite
	repo      *repository.MemoryTeamRepository
	httpSuite *testutils.HTTPTestSuite
}

func (suite *PhaseFlowTestSuite) SetupTest() {
	provider, err := content.NewProvider()
	require.NoError(suite.T(), err)

	suite.repo = repository.NewMemoryTeamRepository()
	phaseService := service.NewPhaseService(suite.repo, provider)
	handler := handlers.NewPhaseHandler(phaseService)

	suite.httpSuite = testutils.SetupHTTPTest()
	phases := suite.httpSuite.Router.Group("/api/v1/phases")
	{
		phases.GET("/:phase/content", handler.GetPhaseContent)
		phases.POST("/1/submit", handler.SubmitPhase1)
		phases.POST("/2/check-single", handler.CheckQuizAnswer)
		phases.POST("/2/submit", handler.SubmitPhase2)
		phases.POST("/3/submit", handler.SubmitPhase3)
		phases.POST("/4/submit", handler.SubmitPhase4)
		phases.POST("/5/answer", handler.AnswerRiddle)
		phases.POST("/5/complete", handler.CompletePhase5)
		phases.POST("/6/submit", handler.SubmitPhase6)
	}
}

func (suite *PhaseFlowTestSuite) registerTeamAt(phase int) uuid.UUID {
	team := testutils.NewTeamFactory().AtPhase(phase)
	require.NoError(suite.T(), suite.repo.Create(team))
	return team.ID
}

func (suite *PhaseFlowTestSuite) TestPhaseContentIsStripped() {
	for _, phase := range []string{"2", "3", "4", "5"} {
		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/phases/"+phase+"/content", nil)

		assert.Equal(suite.T(), http.StatusOK, recorder.Code)
		body := recorder.Body.String()
		assert.NotContains(suite.T(), body, "correctAnswer", "phase %s leaked an answer key", phase)
		assert.NotContains(suite.T(), body, "acceptedAnswers", "phase %s leaked an answer key", phase)
	}
}

func (suite *PhaseFlowTestSuite) TestPhaseContentErrors() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/phases/9/content", nil)
	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)

	recorder = suite.httpSuite.MakeRequest("GET", "/api/v1/phases/two/content", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid phase number")
}

func (suite *PhaseFlowTestSuite) TestSubmitPhase1() {
	suite.T().Run("Pass", func(t *testing.T) {
		id := suite.registerTeamAt(1)

		body := map[string]interface{}{
			"teamId":    id.String(),
			"aiPrompt":  "A festival banner for VU2050",
			"imagePath": "uploads/banner.png",
		}
		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/phases/1/submit", body)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var result service.Phase1Result
		testutils.ParseJSONResponse(t, recorder, &result)
		assert.True(t, result.Completed)
		assert.Equal(t, 2, result.CurrentPhase)
	})

	suite.T().Run("Missing Marker", func(t *testing.T) {
		id := suite.registerTeamAt(1)

		body := map[string]interface{}{"teamId": id.String(), "aiPrompt": "a dog"}
		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/phases/1/submit", body)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var result service.Phase1Result
		testutils.ParseJSONResponse(t, recorder, &result)
		assert.False(t, result.Completed)
	})

	suite.T().Run("Replay Conflict", func(t *testing.T) {
		id := suite.registerTeamAt(2)

		body := map[string]interface{}{"teamId": id.String(), "aiPrompt": "VU2050 once more"}
		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/phases/1/submit", body)

		testutils.AssertErrorResponse(t, recorder, http.StatusConflict, "already completed")
	})

	suite.T().Run("Invalid Team ID", func(t *testing.T) {
		body := map[string]interface{}{"teamId": "nope", "aiPrompt": "VU2050"}
		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/phases/1/submit", body)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid team ID")
	})

	suite.T().Run("Unknown Team", func(t *testing.T) {
		body := map[string]interface{}{"teamId": uuid.New().String(), "aiPrompt": "VU2050"}
		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/phases/1/submit", body)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func (suite *PhaseFlowTestSuite) TestCheckSingleAnswer() {
	body := map[string]interface{}{"questionIndex": 0, "answer": 1}
	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/phases/2/check-single", body)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var result map[string]bool
	testutils.ParseJSONResponse(suite.T(), recorder, &result)
	assert.True(suite.T(), result["correct"])

	// The zero answer must bind; a pointer field distinguishes 0 from absent.
	body = map[string]interface{}{"questionIndex": 0, "answer": 0}
	recorder = suite.httpSuite.MakeRequest("POST", "/api/v1/phases/2/check-single", body)
	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	testutils.ParseJSONResponse(suite.T(), recorder, &result)
	assert.False(suite.T(), result["correct"])
}

func (suite *PhaseFlowTestSuite) TestSubmitQuiz() {
	suite.T().Run("Wrong Phase Conflict", func(t *testing.T) {
		id := suite.registerTeamAt(1)

		body := map[string]interface{}{"teamId": id.String(), "answers": []int{1, 2, 1, 1, 1}}
		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/phases/2/submit", body)

		testutils.AssertErrorResponse(t, recorder, http.StatusConflict, "cannot submit phase 2")
	})

	suite.T().Run("Perfect Score", func(t *testing.T) {
		id := suite.registerTeamAt(2)

		body := map[string]interface{}{"teamId": id.String(), "answers": []int{1, 2, 1, 1, 1}}
		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/phases/2/submit", body)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var result service.QuizResult
		testutils.ParseJSONResponse(t, recorder, &result)
		assert.True(t, result.Passed)
		assert.Equal(t, 3, result.CurrentPhase)
	})

	suite.T().Run("Partial Score Fails", func(t *testing.T) {
		id := suite.registerTeamAt(2)

		body := map[string]interface{}{"teamId": id.String(), "answers": []int{0, 0, 0, 0, 0}}
		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/phases/2/submit", body)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var result service.QuizResult
		testutils.ParseJSONResponse(t, recorder, &result)
		assert.False(t, result.Passed)
		assert.Equal(t, 2, result.CurrentPhase)
	})

	suite.T().Run("Wrong Answer Count", func(t *testing.T) {
		id := suite.registerTeamAt(2)

		body := map[string]interface{}{"teamId": id.String(), "answers": []int{1}}
		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/phases/2/submit", body)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "one answer per question")
	})
}

func (suite *PhaseFlowTestSuite) TestCompletePhase5() {
	suite.T().Run("Server Recomputes The Score", func(t *testing.T) {
		id := suite.registerTeamAt(5)

		// A client-claimed score field is simply unknown to the contract;
		// only the answers matter.
		body := map[string]interface{}{
			"teamId": id.String(),
			"score":  4,
			"answers": map[string]interface{}{
				"1": map[string]string{"answer": "keyboard"},
				"2": map[string]string{"answer": "wrong"},
				"3": map[string]string{"answer": "echo"},
				"4": map[string]string{"answer": "future"},
			},
		}
		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/phases/5/complete", body)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var result service.Phase5Result
		testutils.ParseJSONResponse(t, recorder, &result)
		assert.False(t, result.Success)
		assert.Equal(t, 3, result.Score)
	})

	suite.T().Run("All Correct", func(t *testing.T) {
		id := suite.registerTeamAt(5)

		body := map[string]interface{}{
			"teamId": id.String(),
			"answers": map[string]interface{}{
				"1": map[string]string{"answer": "a keyboard"},
				"2": map[string]string{"answer": "Hole"},
				"3": map[string]string{"answer": " echo "},
				"4": map[string]string{"answer": "the future"},
			},
		}
		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/phases/5/complete", body)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var result service.Phase5Result
		testutils.ParseJSONResponse(t, recorder, &result)
		assert.True(t, result.Success)
		assert.Equal(t, 6, result.CurrentPhase)
	})

	suite.T().Run("Non-Numeric Riddle ID", func(t *testing.T) {
		id := suite.registerTeamAt(5)

		body := map[string]interface{}{
			"teamId": id.String(),
			"answers": map[string]interface{}{
				"first": map[string]string{"answer": "keyboard"},
			},
		}
		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/phases/5/complete", body)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "riddle ids must be numeric")
	})
}

func (suite *PhaseFlowTestSuite) TestFullHuntOverHTTP() {
	id := suite.registerTeamAt(1)
	teamID := id.String()

	steps := []struct {
		url  string
		body map[string]interface{}
	}{
		{"/api/v1/phases/1/submit", map[string]interface{}{"teamId": teamID, "aiPrompt": "VU2050 campus at dawn"}},
		{"/api/v1/phases/2/submit", map[string]interface{}{"teamId": teamID, "answers": []int{1, 2, 1, 1, 1}}},
		{"/api/v1/phases/3/submit", map[string]interface{}{"teamId": teamID, "answers": []int{2, 1, 0, 1, 1}}},
		{"/api/v1/phases/4/submit", map[string]interface{}{"teamId": teamID, "answer": "line 7"}},
		{"/api/v1/phases/5/complete", map[string]interface{}{"teamId": teamID, "answers": map[string]interface{}{
			"1": map[string]string{"answer": "keyboard"},
			"2": map[string]string{"answer": "hole"},
			"3": map[string]string{"answer": "echo"},
			"4": map[string]string{"answer": "future"},
		}}},
		{"/api/v1/phases/6/submit", map[string]interface{}{"teamId": teamID, "locationAnswer": "main library steps"}},
	}

	for _, step := range steps {
		recorder := suite.httpSuite.MakeRequest("POST", step.url, step.body)
		assert.Equal(suite.T(), http.StatusOK, recorder.Code, "step %s: %s", step.url, recorder.Body.String())
	}

	team, err := suite.repo.GetByID(id)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 7, team.CurrentPhase)
	assert.True(suite.T(), team.Phase6.Completed)

	// Every phase now replays as a conflict.
	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/phases/6/submit",
		map[string]interface{}{"teamId": teamID, "locationAnswer": "again"})
	assert.Equal(suite.T(), http.StatusConflict, recorder.Code)
}

// TestPhaseFlowTestSuite runs the phase flow test suite
func TestPhaseFlowTestSuite(t *testing.T) {
	suite.Run(t, new(PhaseFlowTestSuite))
}
