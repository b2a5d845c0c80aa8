package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/model"
)

func TestLoginSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		w.Write([]byte(`{"status":true,"data":{"user":{"id":"1","name":"A","email":"a@x.com"},"token":"tok123"}}`))
	}))
	defer srv.Close()

	c := NewAuthClient(srv.URL, time.Second)
	user, token, err := c.Login(context.Background(), Credentials{Email: "a@x.com", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, "1", user.ID)
	assert.Equal(t, "tok123", token)
}

func TestLoginServerErrorIsGeneric(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"status":false,"message":"stack trace leaked"}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewAuthClient(srv.URL, time.Second)
	_, _, err := c.Login(context.Background(), Credentials{})

	require.Error(t, err)
	var serverErr *ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, GenericErrorMessage, err.Error())
}

func TestLoginApplicationErrorCarriesMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"status":false,"message":"Invalid email or password"}`))
	}))
	defer srv.Close()

	c := NewAuthClient(srv.URL, time.Second)
	_, _, err := c.Login(context.Background(), Credentials{})

	require.Error(t, err)
	var appErr *ApplicationError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Invalid email or password", appErr.Message)
}

func TestLoginFailureWithoutMessageFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"status":false}`))
	}))
	defer srv.Close()

	c := NewAuthClient(srv.URL, time.Second)
	_, _, err := c.Login(context.Background(), Credentials{})

	require.Error(t, err)
	assert.Equal(t, GenericErrorMessage, err.Error())
}

func TestLoginTransportError(t *testing.T) {
	c := NewAuthClient("http://127.0.0.1:1", 100*time.Millisecond)
	_, _, err := c.Login(context.Background(), Credentials{})

	require.Error(t, err)
	var appErr *ApplicationError
	require.ErrorAs(t, err, &appErr)
	assert.NotEmpty(t, appErr.Message)
}

func TestUpdateProfileSendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "Bearer tok123", r.Header.Get("Authorization"))
		w.Write([]byte(`{"status":true,"data":{"user":{"id":"1","name":"B","email":"a@x.com"}}}`))
	}))
	defer srv.Close()

	c := NewAuthClient(srv.URL, time.Second)
	name := "B"
	user, err := c.UpdateProfile(context.Background(), model.UserPatch{Name: &name}, "tok123")

	require.NoError(t, err)
	assert.Equal(t, "B", user.Name)
}
