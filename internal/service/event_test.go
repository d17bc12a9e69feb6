package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/111KartoFan111/kurultai-project/internal/repository/dao"
)

func TestCreateEvent(t *testing.T) {
	db := newTestDB(t)
	svc := newEventService(t, db)
	ctx := context.Background()

	creator := seedUser(t, db, "organizer")

	validInput := func() CreateEventInput {
		return CreateEventInput{
			Name:        "Open Debate Night",
			Description: "Monthly open debate",
			EventDate:   "2099-02-02",
			EventTime:   "19:00",
			Location:    "Auditorium",
			CreatedBy:   creator.ID,
		}
	}

	t.Run("success", func(t *testing.T) {
		event, err := svc.CreateEvent(ctx, validInput())
		require.NoError(t, err)

		assert.NotZero(t, event.ID)
		assert.False(t, event.IsStopped)
		assert.Equal(t, creator.ID, event.CreatedBy)
		assert.Equal(t, "19:00", event.EventTime)
	})

	t.Run("missing field", func(t *testing.T) {
		input := validInput()
		input.Description = ""

		_, err := svc.CreateEvent(ctx, input)
		assert.ErrorIs(t, err, ErrEventFieldMissing)
	})

	t.Run("unknown creator", func(t *testing.T) {
		input := validInput()
		input.CreatedBy = 9999

		_, err := svc.CreateEvent(ctx, input)
		assert.ErrorIs(t, err, ErrCreatorNotFound)
	})

	t.Run("bad date format", func(t *testing.T) {
		input := validInput()
		input.EventDate = "02.02.2099"

		_, err := svc.CreateEvent(ctx, input)
		assert.ErrorIs(t, err, ErrEventScheduleInvalid)
	})

	t.Run("past dates are accepted", func(t *testing.T) {
		// Events, unlike games, carry no future-schedule rule.
		input := validInput()
		input.EventDate = "2001-01-01"

		event, err := svc.CreateEvent(ctx, input)
		require.NoError(t, err)
		assert.NotZero(t, event.ID)
	})
}

func TestRegister(t *testing.T) {
	db := newTestDB(t)
	svc := newEventService(t, db)
	ctx := context.Background()

	creator := seedUser(t, db, "host")
	attendee := seedUser(t, db, "attendee")
	event := mustCreateEvent(t, svc, creator.ID, "Championship Kickoff", "2099-03-03")

	t.Run("first registration succeeds", func(t *testing.T) {
		registration, err := svc.Register(ctx, event.ID, attendee.ID)
		require.NoError(t, err)

		assert.Equal(t, event.ID, registration.EventID)
		assert.Equal(t, attendee.ID, registration.UserID)
		assert.Nil(t, registration.TeamID)
		assert.False(t, registration.RegisteredAt.IsZero())
	})

	t.Run("second registration is rejected", func(t *testing.T) {
		_, err := svc.Register(ctx, event.ID, attendee.ID)
		assert.ErrorIs(t, err, ErrAlreadyRegistered)

		count, err := svc.RegistrationCount(ctx, event.ID)
		require.NoError(t, err)
		assert.EqualValues(t, 1, count)
	})

	t.Run("unknown event", func(t *testing.T) {
		_, err := svc.Register(ctx, 9999, attendee.ID)
		assert.ErrorIs(t, err, ErrEventNotFound)
	})

	t.Run("same user may join another event", func(t *testing.T) {
		other := mustCreateEvent(t, svc, creator.ID, "Closing Ceremony", "2099-04-04")

		_, err := svc.Register(ctx, other.ID, attendee.ID)
		require.NoError(t, err)
	})
}

func TestStopRegistration(t *testing.T) {
	db := newTestDB(t)
	svc := newEventService(t, db)
	ctx := context.Background()

	creator := seedUser(t, db, "chair")
	event := mustCreateEvent(t, svc, creator.ID, "Qualifiers", "2099-05-05")

	require.NoError(t, svc.StopRegistration(ctx, event.ID))

	stored, err := svc.repo.FindByID(ctx, event.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsStopped)

	// Stopping again is a silent no-op.
	require.NoError(t, svc.StopRegistration(ctx, event.ID))

	stored, err = svc.repo.FindByID(ctx, event.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsStopped)

	assert.ErrorIs(t, svc.StopRegistration(ctx, 9999), ErrEventNotFound)
}

func TestDeleteEvent(t *testing.T) {
	db := newTestDB(t)
	svc := newEventService(t, db)
	ctx := context.Background()

	creator := seedUser(t, db, "founder")
	first := seedUser(t, db, "first")
	second := seedUser(t, db, "second")

	event := mustCreateEvent(t, svc, creator.ID, "Doomed Event", "2099-06-06")
	survivor := mustCreateEvent(t, svc, creator.ID, "Surviving Event", "2099-07-07")

	_, err := svc.Register(ctx, event.ID, first.ID)
	require.NoError(t, err)
	_, err = svc.Register(ctx, event.ID, second.ID)
	require.NoError(t, err)
	_, err = svc.Register(ctx, survivor.ID, first.ID)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteEvent(ctx, event.ID))

	// The cascade removed the deleted event's registrations and nothing else.
	assert.EqualValues(t, 1, countRows(t, db, &dao.EventRegistration{}))

	events, err := svc.OpenEvents(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, survivor.ID, events[0].ID)

	assert.ErrorIs(t, svc.DeleteEvent(ctx, event.ID), ErrEventNotFound)
}

func TestListEvents(t *testing.T) {
	db := newTestDB(t)
	svc := newEventService(t, db)
	ctx := context.Background()

	creator := seedUser(t, db, "planner")
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	past := mustCreateEvent(t, svc, creator.ID, "Last Season Gala", "2023-01-01")
	today := mustCreateEvent(t, svc, creator.ID, "Today's Workshop", "2024-06-15")
	future := mustCreateEvent(t, svc, creator.ID, "Next Year Summit", "2025-06-15")
	stopped := mustCreateEvent(t, svc, creator.ID, "Closed Meetup", "2099-01-01")
	require.NoError(t, svc.StopRegistration(ctx, stopped.ID))

	t.Run("open ignores dates, excludes stopped", func(t *testing.T) {
		events, err := svc.OpenEvents(ctx)
		require.NoError(t, err)

		ids := make([]uint, len(events))
		for i, e := range events {
			ids[i] = e.ID
		}
		assert.ElementsMatch(t, []uint{past.ID, today.ID, future.ID}, ids)
	})

	t.Run("upcoming filters by date, includes stopped", func(t *testing.T) {
		events, err := svc.UpcomingEvents(ctx, now)
		require.NoError(t, err)

		require.Len(t, events, 3)
		assert.Equal(t, today.ID, events[0].ID)
		assert.Equal(t, future.ID, events[1].ID)
		assert.Equal(t, stopped.ID, events[2].ID)
	})
}
