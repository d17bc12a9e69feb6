package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignupRequestValidate(t *testing.T) {
	valid := SignupRequest{
		Username: "debater",
		Email:    "debater@example.com",
		Password: "password123",
	}

	t.Run("valid", func(t *testing.T) {
		req := valid
		assert.NoError(t, req.Validate())
	})

	t.Run("short username", func(t *testing.T) {
		req := valid
		req.Username = "ab"
		assert.Error(t, req.Validate())
	})

	t.Run("bad email", func(t *testing.T) {
		req := valid
		req.Email = "not-an-email"
		assert.Error(t, req.Validate())
	})

	t.Run("short password", func(t *testing.T) {
		req := valid
		req.Password = "short"
		assert.Error(t, req.Validate())
	})
}

func TestCreateGameRequestValidate(t *testing.T) {
	valid := CreateGameRequest{
		Topic:           "Finals",
		MaxParticipants: "20",
		GameDate:        "2099-01-01",
		GameTime:        "10:00",
		Location:        "Hall A",
		LeagueID:        1,
		JudgeID:         2,
	}

	t.Run("valid", func(t *testing.T) {
		req := valid
		assert.NoError(t, req.Validate())
	})

	t.Run("missing league", func(t *testing.T) {
		req := valid
		req.LeagueID = 0
		assert.Error(t, req.Validate())
	})

	t.Run("non-numeric participants pass binding", func(t *testing.T) {
		// Rejecting "abc" with its own error code is the service's job.
		req := valid
		req.MaxParticipants = "abc"
		assert.NoError(t, req.Validate())
	})
}

func TestUpdateGameRequestValidate(t *testing.T) {
	t.Run("all nil is a valid empty patch", func(t *testing.T) {
		req := UpdateGameRequest{}
		assert.NoError(t, req.Validate())
	})

	t.Run("zero participants", func(t *testing.T) {
		zero := 0
		req := UpdateGameRequest{MaxParticipants: &zero}
		assert.Error(t, req.Validate())
	})

	t.Run("empty topic", func(t *testing.T) {
		empty := ""
		req := UpdateGameRequest{Topic: &empty}
		assert.Error(t, req.Validate())
	})
}

func TestCreateEventRequestValidate(t *testing.T) {
	valid := CreateEventRequest{
		Name:        "Open Night",
		Description: "Monthly debate",
		EventDate:   "2099-02-02",
		EventTime:   "19:00",
		Location:    "Auditorium",
	}

	t.Run("valid", func(t *testing.T) {
		req := valid
		assert.NoError(t, req.Validate())
	})

	t.Run("missing description", func(t *testing.T) {
		req := valid
		req.Description = ""
		assert.Error(t, req.Validate())
	})
}

func TestCreateTeamRequestValidate(t *testing.T) {
	t.Run("speakers optional", func(t *testing.T) {
		req := CreateTeamRequest{Name: "Golden Eagles"}
		assert.NoError(t, req.Validate())
	})

	t.Run("missing name", func(t *testing.T) {
		req := CreateTeamRequest{}
		assert.Error(t, req.Validate())
	})
}

func TestChangeRankRequestValidate(t *testing.T) {
	assert.NoError(t, (&ChangeRankRequest{NewRank: "master"}).Validate())
	assert.Error(t, (&ChangeRankRequest{}).Validate())
}
