package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/aidt-dashboard-api/internal/dto"
)

type fakeNotificationSrv struct {
	saved map[string]string
}

func (f *fakeNotificationSrv) Get(_ context.Context, teacherID string) (*dto.NotificationTimeResponse, error) {
	if at, ok := f.saved[teacherID]; ok {
		return &dto.NotificationTimeResponse{TeacherID: teacherID, NotifyAt: at}, nil
	}
	return &dto.NotificationTimeResponse{TeacherID: teacherID, NotifyAt: "14:00", IsDefault: true}, nil
}

func (f *fakeNotificationSrv) Save(_ context.Context, teacherID string, req dto.NotificationTimeRequest) (*dto.NotificationTimeResponse, error) {
	f.saved[teacherID] = req.NotifyAt
	return &dto.NotificationTimeResponse{TeacherID: teacherID, NotifyAt: req.NotifyAt}, nil
}

func TestNotificationHandlerRoundTrip(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewNotificationHandler(&fakeNotificationSrv{saved: map[string]string{}})
	router := gin.New()
	router.GET("/teachers/:teacherId/notification-time", handler.Get)
	router.PUT("/teachers/:teacherId/notification-time", handler.Save)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/teachers/teacher-1/notification-time", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "14:00", envelope.Data["notifyAt"])
	assert.Equal(t, true, envelope.Data["isDefault"])

	body := bytes.NewBufferString(`{"notifyAt":"08:15"}`)
	req := httptest.NewRequest(http.MethodPut, "/teachers/teacher-1/notification-time", body)
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/teachers/teacher-1/notification-time", nil))
	envelope = responseEnvelope{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "08:15", envelope.Data["notifyAt"])
}

func TestNotificationHandlerRejectsMalformedBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewNotificationHandler(&fakeNotificationSrv{saved: map[string]string{}})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPut, "/teachers/teacher-1/notification-time", bytes.NewBufferString("{"))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "teacherId", Value: "teacher-1"}}

	handler.Save(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
