package api_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/limbo/fittrack/internal/api"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/internal/service"
	"github.com/limbo/fittrack/internal/service/mocks"
	"github.com/limbo/fittrack/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSchedule(id, planID uuid.UUID) *entity.ScheduledWorkout {
	return &entity.ScheduledWorkout{
		ID:            id,
		UserID:        userID,
		WorkoutPlanID: planID,
		ScheduledDate: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		ScheduledTime: "07:30",
		Status:        entity.StatusPending,
		WorkoutPlan:   &entity.PlanSummary{ID: planID, Name: "Push day"},
	}
}

func TestCreateSchedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	sService := mocks.NewMockScheduleServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		ScheduleService: sService,
	})
	planID := uuid.New()
	req := service.CreateScheduleRequest{
		WorkoutPlanID: planID.String(),
		ScheduledDate: "2025-06-02T00:00:00Z",
		ScheduledTime: "7:30",
	}
	body := mustMarshal(t, req)

	t.Run("scheduled", func(t *testing.T) {
		sService.EXPECT().Create(gomock.Any(), userID, &req).Return(testSchedule(uuid.New(), planID), nil)
		rr := httptest.NewRecorder()
		serv.CreateSchedule(rr, withUser(httptest.NewRequest(http.MethodPost, "/api/v1/schedules", bytes.NewReader(body))))
		require.Equal(t, http.StatusCreated, rr.Result().StatusCode)
		sw, ok := responseData(t, rr)["scheduledWorkout"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "PENDING", sw["status"])
		assert.Equal(t, "07:30", sw["scheduledTime"])
	})
	t.Run("foreign plan", func(t *testing.T) {
		sService.EXPECT().Create(gomock.Any(), userID, &req).Return(nil, errorvalues.ErrWorkoutPlanNotFound)
		rr := httptest.NewRecorder()
		serv.CreateSchedule(rr, withUser(httptest.NewRequest(http.MethodPost, "/api/v1/schedules", bytes.NewReader(body))))
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
		assert.Equal(t, "Workout plan not found", decodeResponse(t, rr)["message"])
	})
}

func TestListSchedules(t *testing.T) {
	ctrl := gomock.NewController(t)
	sService := mocks.NewMockScheduleServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		ScheduleService: sService,
	})
	list := []*entity.ScheduledWorkout{testSchedule(uuid.New(), uuid.New())}

	t.Run("filters pass through", func(t *testing.T) {
		sService.EXPECT().List(gomock.Any(), userID, &service.ScheduleListRequest{
			Status:    "PENDING",
			StartDate: "2025-06-01",
			EndDate:   "2025-06-30",
		}).Return(list, nil)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/schedules?status=PENDING&startDate=2025-06-01&endDate=2025-06-30", nil)
		serv.ListSchedules(rr, withUser(r))
		require.Equal(t, http.StatusOK, rr.Result().StatusCode)
		data := responseData(t, rr)
		assert.Equal(t, float64(1), data["count"])
		assert.Len(t, data["scheduledWorkoutPlans"], 1)
	})
	t.Run("invalid query", func(t *testing.T) {
		sService.EXPECT().List(gomock.Any(), userID, &service.ScheduleListRequest{Status: "DONE"}).Return(nil, errorvalues.NewValidationError(
			errorvalues.MsgValidationFailed,
			errorvalues.FieldError{Field: "status", Message: "Invalid status. Must be one of: PENDING, COMPLETED, SKIPPED, CANCELLED"},
		))
		rr := httptest.NewRecorder()
		serv.ListSchedules(rr, withUser(httptest.NewRequest(http.MethodGet, "/api/v1/schedules?status=DONE", nil)))
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
		resp := decodeResponse(t, rr)
		assert.Equal(t, "Invalid query parameters", resp["message"])
		assert.Len(t, resp["errors"], 1)
	})
}

func TestScheduleByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	sService := mocks.NewMockScheduleServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		ScheduleService: sService,
	})
	id, planID := uuid.New(), uuid.New()

	t.Run("get includes plan exercises", func(t *testing.T) {
		sw := testSchedule(id, planID)
		sw.WorkoutPlan.Exercises = testPlan(planID).Exercises
		sService.EXPECT().Get(gomock.Any(), userID, id).Return(sw, nil)
		rr := httptest.NewRecorder()
		serv.GetSchedule(rr, withUser(withURLParam(httptest.NewRequest(http.MethodGet, "/api/v1/schedules/"+id.String(), nil), "id", id.String())))
		require.Equal(t, http.StatusOK, rr.Result().StatusCode)
		got, ok := responseData(t, rr)["scheduledWorkoutPlan"].(map[string]any)
		require.True(t, ok)
		plan, ok := got["workoutPlan"].(map[string]any)
		require.True(t, ok)
		assert.Len(t, plan["workoutPlanExercises"], 1)
	})
	t.Run("update status", func(t *testing.T) {
		status := "SKIPPED"
		patch := service.UpdateScheduleRequest{Status: &status}
		updated := testSchedule(id, planID)
		updated.Status = entity.StatusSkipped
		sService.EXPECT().Update(gomock.Any(), userID, id, &patch).Return(updated, nil)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPut, "/api/v1/schedules/"+id.String(), bytes.NewReader(mustMarshal(t, patch)))
		serv.UpdateSchedule(rr, withUser(withURLParam(r, "id", id.String())))
		require.Equal(t, http.StatusOK, rr.Result().StatusCode)
		resp := decodeResponse(t, rr)
		assert.Equal(t, "Scheduled workout updated successfully", resp["message"])
	})
	t.Run("delete foreign", func(t *testing.T) {
		sService.EXPECT().Delete(gomock.Any(), userID, id).Return(errorvalues.ErrScheduledWorkoutNotFound)
		rr := httptest.NewRecorder()
		serv.DeleteSchedule(rr, withUser(withURLParam(httptest.NewRequest(http.MethodDelete, "/api/v1/schedules/"+id.String(), nil), "id", id.String())))
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
		assert.Equal(t, "Scheduled workout not found", decodeResponse(t, rr)["message"])
	})
	t.Run("delete", func(t *testing.T) {
		sService.EXPECT().Delete(gomock.Any(), userID, id).Return(nil)
		rr := httptest.NewRecorder()
		serv.DeleteSchedule(rr, withUser(withURLParam(httptest.NewRequest(http.MethodDelete, "/api/v1/schedules/"+id.String(), nil), "id", id.String())))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		assert.Equal(t, "Scheduled workout deleted successfully", decodeResponse(t, rr)["message"])
	})
}
