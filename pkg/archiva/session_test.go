package archiva

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xompass/archctl/pkg/log"
)

func quietLogger() log.Logger {
	l, _ := log.New(&log.Config{Level: "s", Out: io.Discard, ErrOut: io.Discard})
	return l
}

func newTestSession(srv *httptest.Server, options ...SessionOption) *Session {
	options = append([]SessionOption{SessionOptLogger(quietLogger())}, options...)
	return NewSession(srv.URL, "admin", "pw", options...)
}

func loginHandler(mux *http.ServeMux) {
	mux.HandleFunc(loginPath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Set-Cookie", "JSESSIONID=xyz; Path=/")
		w.WriteHeader(http.StatusOK)
	})
}

func logoutHandler(mux *http.ServeMux, hits *int) {
	mux.HandleFunc(logoutPath, func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			*hits++
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestLoginCapturesSessionCookie(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc(loginPath, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/xml", r.Header.Get("Content-Type"))
		require.Equal(t, "application/json", r.Header.Get("Accept"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), "<username>admin</username>")
		assert.Contains(t, string(body), "<password>pw</password>")

		w.Header().Set("Set-Cookie", "JSESSIONID=xyz; Path=/")
		w.WriteHeader(http.StatusOK)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	s := newTestSession(srv)
	require.NoError(t, s.Login(context.Background()))
	assert.Equal(t, "JSESSIONID=xyz", s.cookie)
	assert.True(t, s.LoggedIn())
}

func TestLoginAuthenticationError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc(loginPath, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"errorMessages":[{"errorKey":"bad.credentials"}]}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	s := newTestSession(srv)
	err := s.Login(context.Background())
	require.Error(t, err)

	var errResp *ErrorResponse
	require.True(t, errors.As(err, &errResp))
	assert.Equal(t, http.StatusUnauthorized, errResp.StatusCode)
	require.Len(t, errResp.ErrorMessages, 1)
	assert.Equal(t, "bad.credentials", errResp.ErrorMessages[0].ErrorKey)
	assert.False(t, s.LoggedIn())
}

func TestLoginUnknownErrorBody(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc(loginPath, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"detail":"boom"}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	err := newTestSession(srv).Login(context.Background())

	var errResp *ErrorResponse
	require.True(t, errors.As(err, &errResp))
	assert.Equal(t, http.StatusInternalServerError, errResp.StatusCode)
	assert.Empty(t, errResp.ErrorMessages)
	assert.JSONEq(t, `{"detail":"boom"}`, string(errResp.Raw))
}

func TestLoginNonObjectErrorBody(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc(loginPath, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`["unexpected"]`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	err := newTestSession(srv).Login(context.Background())

	// any decodable body still yields an ErrorResponse, only
	// undecodable bodies surface as decode errors
	var errResp *ErrorResponse
	require.True(t, errors.As(err, &errResp))
	assert.Equal(t, http.StatusInternalServerError, errResp.StatusCode)
	assert.Empty(t, errResp.ErrorMessages)
	assert.JSONEq(t, `["unexpected"]`, string(errResp.Raw))
}

func TestLoginEmptyErrorBody(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc(loginPath, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	err := newTestSession(srv).Login(context.Background())

	var errResp *ErrorResponse
	require.True(t, errors.As(err, &errResp))
	assert.Equal(t, http.StatusBadGateway, errResp.StatusCode)
	assert.Empty(t, errResp.ErrorMessages)
	assert.Empty(t, errResp.Raw)
}

func TestLoginUndecodableErrorBody(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc(loginPath, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<html>not json</html>`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	err := newTestSession(srv).Login(context.Background())
	require.Error(t, err)

	var errResp *ErrorResponse
	assert.False(t, errors.As(err, &errResp))
	assert.Contains(t, err.Error(), "could not decode")
}

func TestVersionsList(t *testing.T) {
	mux := http.NewServeMux()
	loginHandler(mux)
	mux.HandleFunc("/restServices/archivaServices/browseService/versionsList/com.xompass.edge/Printer",
		func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "JSESSIONID=xyz", r.Header.Get("Cookie"))
			_, _ = w.Write([]byte(`{"versions":["1.0","1.1"]}`))
		})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	s := newTestSession(srv)
	require.NoError(t, s.Login(context.Background()))

	list, err := s.VersionsList(context.Background(), "com.xompass.edge", "Printer")
	require.NoError(t, err)
	assert.Equal(t, []string{"1.0", "1.1"}, list.Versions)
}

func TestVersionsListError(t *testing.T) {
	mux := http.NewServeMux()
	loginHandler(mux)
	srv := httptest.NewServer(mux)
	defer srv.Close()

	s := newTestSession(srv)
	require.NoError(t, s.Login(context.Background()))

	_, err := s.VersionsList(context.Background(), "no.such", "Artifact")
	var errResp *ErrorResponse
	require.True(t, errors.As(err, &errResp))
	assert.Equal(t, http.StatusNotFound, errResp.StatusCode)
}

func TestNotLoggedIn(t *testing.T) {
	srv := httptest.NewServer(http.NewServeMux())
	defer srv.Close()

	s := newTestSession(srv)
	_, err := s.VersionsList(context.Background(), "g", "n")
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestDownloadNoContent(t *testing.T) {
	var artifactHits int
	mux := http.NewServeMux()
	loginHandler(mux)
	mux.HandleFunc("/restServices/archivaServices/browseService/artifactDownloadInfos/g/n/1.0",
		func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[]`))
		})
	mux.HandleFunc("/repository/", func(w http.ResponseWriter, r *http.Request) {
		artifactHits++
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	s := newTestSession(srv)
	require.NoError(t, s.Login(context.Background()))

	filename, found, err := s.Download(context.Background(), "g", "n", "1.0", t.TempDir())
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, filename)
	assert.Zero(t, artifactHits, "no artifact request expected for empty download infos")
}

func TestDownload(t *testing.T) {
	const content = "artifact bytes"

	mux := http.NewServeMux()
	loginHandler(mux)
	srv := httptest.NewServer(mux)
	defer srv.Close()

	mux.HandleFunc("/restServices/archivaServices/browseService/artifactDownloadInfos/com.xompass.edge/Printer/1.1",
		func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[{"groupId":"com.xompass.edge","artifactId":"Printer","id":"Printer-1.1.jar","version":"1.1","url":"` + srv.URL + `/repository/internal/Printer-1.1.jar"}]`))
		})
	mux.HandleFunc("/repository/internal/Printer-1.1.jar", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "JSESSIONID=xyz", r.Header.Get("Cookie"))
		_, _ = w.Write([]byte(content))
	})

	s := newTestSession(srv)
	require.NoError(t, s.Login(context.Background()))

	dir := t.TempDir()
	filename, found, err := s.Download(context.Background(), "com.xompass.edge", "Printer", "1.1", dir)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Printer-1.1.jar", filename)

	written, err := os.ReadFile(filepath.Join(dir, filename))
	require.NoError(t, err)
	assert.Equal(t, content, string(written))
}

func TestWithRunsLogoutOnce(t *testing.T) {
	var logoutHits int
	mux := http.NewServeMux()
	loginHandler(mux)
	logoutHandler(mux, &logoutHits)
	srv := httptest.NewServer(mux)
	defer srv.Close()

	s := newTestSession(srv)
	err := s.With(context.Background(), func(*Session) error { return nil })
	require.NoError(t, err)
	assert.Equal(t, 1, logoutHits)
}

func TestWithRunsLogoutOnError(t *testing.T) {
	var logoutHits int
	mux := http.NewServeMux()
	loginHandler(mux)
	logoutHandler(mux, &logoutHits)
	srv := httptest.NewServer(mux)
	defer srv.Close()

	boom := errors.New("boom")
	s := newTestSession(srv)
	err := s.With(context.Background(), func(*Session) error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, logoutHits)
}

func TestWithSkipsBodyOnLoginFailure(t *testing.T) {
	var logoutHits int
	mux := http.NewServeMux()
	mux.HandleFunc(loginPath, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	logoutHandler(mux, &logoutHits)
	srv := httptest.NewServer(mux)
	defer srv.Close()

	var ran bool
	s := newTestSession(srv)
	err := s.With(context.Background(), func(*Session) error {
		ran = true
		return nil
	})
	require.Error(t, err)
	assert.False(t, ran)
	assert.Zero(t, logoutHits)
}

func TestLogoutKeepsLocalCookie(t *testing.T) {
	mux := http.NewServeMux()
	loginHandler(mux)
	logoutHandler(mux, nil)
	srv := httptest.NewServer(mux)
	defer srv.Close()

	s := newTestSession(srv)
	require.NoError(t, s.Login(context.Background()))
	require.NoError(t, s.Logout(context.Background()))
	assert.Equal(t, "JSESSIONID=xyz", s.cookie)
}

func TestRefererHeader(t *testing.T) {
	var sawReferer string
	mux := http.NewServeMux()
	mux.HandleFunc(loginPath, func(w http.ResponseWriter, r *http.Request) {
		sawReferer = r.Header.Get("Referer")
		w.Header().Set("Set-Cookie", "JSESSIONID=xyz; Path=/")
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	s := newTestSession(srv, SessionOptReferer())
	require.NoError(t, s.Login(context.Background()))
	assert.Equal(t, srv.URL, sawReferer)

	sawReferer = ""
	s = newTestSession(srv)
	require.NoError(t, s.Login(context.Background()))
	assert.Empty(t, sawReferer)
}

func TestPing(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc(pingPath, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("pong"))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	assert.NoError(t, Ping(context.Background(), srv.URL))
}

func TestPingError(t *testing.T) {
	srv := httptest.NewServer(http.NewServeMux())
	defer srv.Close()

	err := Ping(context.Background(), srv.URL)
	var errResp *ErrorResponse
	require.True(t, errors.As(err, &errResp))
	assert.Equal(t, http.StatusNotFound, errResp.StatusCode)
}
