package archiva

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/xompass/archctl/pkg/log"
	"github.com/xompass/archctl/pkg/log/logfields"
	"github.com/xompass/archctl/pkg/util/fileutil"
	"github.com/xompass/archctl/pkg/util/httputil"
	"github.com/xompass/archctl/pkg/util/ioutils"
	"github.com/xompass/archctl/pkg/util/jsonutil"
)

const (
	loginPath         = "/restServices/redbackServices/loginService/logIn"
	logoutPath        = "/restServices/redbackServices/loginService/logout"
	versionsListPath  = "/restServices/archivaServices/browseService/versionsList/%s/%s"
	downloadInfosPath = "/restServices/archivaServices/browseService/artifactDownloadInfos/%s/%s/%s"
)

// Session talks to one Archiva instance. It is constructed inert;
// Login captures the session cookie, and every authenticated call
// replays it. Logout invalidates the server side but does not clear
// the local cookie.
type Session struct {
	host     string
	user     string
	password string

	setReferer bool

	client *httputil.Client
	logger log.Logger

	// cookie is the JSESSIONID pair captured at login, sent verbatim
	// as the Cookie header. Written once by Login.
	cookie string
}

// SessionOption allows specifying various settings configurable by the
// user for overriding the defaults used when creating a new session.
type SessionOption func(*Session)

// NewSession returns a session for the Archiva instance at host. No
// network call is made until Login.
func NewSession(host, user, password string, options ...SessionOption) *Session {
	s := &Session{
		host:     strings.TrimSuffix(host, "/"),
		user:     user,
		password: password,
	}
	for _, option := range options {
		option(s)
	}
	if s.client == nil {
		s.client = httputil.DefaultClient
	}
	if s.logger == nil {
		s.logger = log.DefaultLogger()
	}
	return s
}

// SessionOptReferer returns a function that makes every request carry
// a "Referer: {host}" header.
func SessionOptReferer() SessionOption {
	return func(s *Session) {
		s.setReferer = true
	}
}

// SessionOptLogger returns a function that sets the session logger.
func SessionOptLogger(l log.Logger) SessionOption {
	return func(s *Session) {
		s.logger = l
	}
}

func (s *Session) Host() string {
	return s.host
}

// LoggedIn reports whether Login has captured a session cookie.
func (s *Session) LoggedIn() bool {
	return s.cookie != ""
}

func (s *Session) endpoint(path string) string {
	return s.host + path
}

// Login posts the credentials as XML to the redback login service and
// captures the JSESSIONID pair from the Set-Cookie response header.
func (s *Session) Login(ctx context.Context) error {
	body, err := xml.Marshal(loginRequest{Username: s.user, Password: s.password})
	if err != nil {
		return errors.Wrap(err, "failed to marshal login request")
	}

	headers := http.Header{}
	headers.Set("Accept", "application/json")
	if s.setReferer {
		headers.Set("Referer", s.host)
	}

	u := s.endpoint(loginPath)
	s.logger.Info("POST " + u)
	resp, err := s.client.Post(ctx, u, "application/xml", bytes.NewReader(body), headers)
	if err != nil {
		return errors.Wrap(err, "login request failed")
	}
	defer ioutils.QuiteClose(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return s.errorFromResponse(resp)
	}

	s.cookie = httputil.ExtractSessionCookie(resp.Header.Get("Set-Cookie"))
	s.logger.Info("logged in", logfields.String("session", httputil.SessionID(s.cookie)))
	return nil
}

// errorFromResponse turns a non-200 login response into an error. A
// body with an "errorMessages" list yields an ErrorResponse carrying
// the messages (each errorKey logged), other JSON yields an
// ErrorResponse with the raw body, an empty body yields a bare
// ErrorResponse, and a non-JSON body is a decode error.
func (s *Session) errorFromResponse(resp *http.Response) error {
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read response body")
	}
	if len(bytes.TrimSpace(b)) == 0 {
		return &ErrorResponse{StatusCode: resp.StatusCode}
	}

	var body struct {
		ErrorMessages []ErrorMessage `json:"errorMessages"`
	}
	if err := jsonutil.Unmarshal(b, &body); err != nil {
		if !jsonutil.Valid(b) {
			return errors.Wrapf(err, "could not decode: %s", b)
		}
		// valid JSON of some other shape, e.g. an array
		return &ErrorResponse{StatusCode: resp.StatusCode, Raw: b}
	}
	if len(body.ErrorMessages) > 0 {
		for _, m := range body.ErrorMessages {
			s.logger.Error(m.ErrorKey)
		}
		return &ErrorResponse{StatusCode: resp.StatusCode, ErrorMessages: body.ErrorMessages}
	}
	return &ErrorResponse{StatusCode: resp.StatusCode, Raw: b}
}

// get issues an authenticated GET. Called before a successful Login it
// fails fast instead of sending a cookie-less request.
func (s *Session) get(ctx context.Context, url, accept string) (*http.Response, error) {
	if !s.LoggedIn() {
		return nil, ErrNotLoggedIn
	}

	headers := http.Header{}
	headers.Set("Cookie", s.cookie)
	if accept != "" {
		headers.Set("Accept", accept)
	}
	if s.setReferer {
		headers.Set("Referer", s.host)
	}

	s.logger.Info("GET " + url)
	return s.client.Get(ctx, url, headers)
}

// Logout invalidates the server-side session. The response is not
// validated and the local cookie is kept.
func (s *Session) Logout(ctx context.Context) error {
	resp, err := s.get(ctx, s.endpoint(logoutPath), "")
	if err != nil {
		return err
	}
	ioutils.QuiteClose(resp.Body)
	return nil
}

// VersionsList returns the ordered versions of group:name.
func (s *Session) VersionsList(ctx context.Context, group, name string) (*VersionsList, error) {
	u := s.endpoint(fmt.Sprintf(versionsListPath, group, name))
	resp, err := s.get(ctx, u, "application/json")
	if err != nil {
		return nil, err
	}
	defer ioutils.QuiteClose(resp.Body)

	if resp.StatusCode != http.StatusOK {
		s.logger.Error("unexpected response", logfields.Int("status", resp.StatusCode))
		return nil, &ErrorResponse{StatusCode: resp.StatusCode}
	}

	var list VersionsList
	if err := jsonutil.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, errors.Wrap(err, "failed to decode versions list")
	}
	return &list, nil
}

// DownloadInfos returns the download records matching the coordinate,
// in server order. Zero records is not an error.
func (s *Session) DownloadInfos(ctx context.Context, group, name, version string) ([]DownloadInfo, error) {
	u := s.endpoint(fmt.Sprintf(downloadInfosPath, group, name, version))
	resp, err := s.get(ctx, u, "application/json")
	if err != nil {
		return nil, err
	}
	defer ioutils.QuiteClose(resp.Body)

	if resp.StatusCode != http.StatusOK {
		s.logger.Error("unexpected response", logfields.Int("status", resp.StatusCode))
		return nil, &ErrorResponse{StatusCode: resp.StatusCode}
	}

	var infos []DownloadInfo
	if err := jsonutil.NewDecoder(resp.Body).Decode(&infos); err != nil {
		return nil, errors.Wrap(err, "failed to decode download infos")
	}
	return infos, nil
}

// Fetch opens the artifact stream behind info.Url. Redirects are
// followed. The caller owns the returned body.
func (s *Session) Fetch(ctx context.Context, info *DownloadInfo) (io.ReadCloser, int64, error) {
	resp, err := s.get(ctx, info.Url, "")
	if err != nil {
		return nil, 0, err
	}
	if resp.StatusCode != http.StatusOK {
		ioutils.QuiteClose(resp.Body)
		s.logger.Error("unexpected response", logfields.Int("status", resp.StatusCode))
		return nil, 0, &ErrorResponse{StatusCode: resp.StatusCode}
	}
	return resp.Body, resp.ContentLength, nil
}

// Download fetches the first artifact matching the coordinate into
// dir (the working directory when dir is empty), named by the
// record's Id. found is false when no record matches; no artifact
// request is issued in that case.
func (s *Session) Download(ctx context.Context, group, name, version, dir string) (filename string, found bool, err error) {
	infos, err := s.DownloadInfos(ctx, group, name, version)
	if err != nil {
		return "", false, err
	}
	if len(infos) == 0 {
		return "", false, nil
	}
	info := infos[0]

	body, _, err := s.Fetch(ctx, &info)
	if err != nil {
		return "", false, err
	}
	defer ioutils.QuiteClose(body)

	if err := fileutil.WriteFile(filepath.Join(dir, info.Id), body); err != nil {
		return "", false, err
	}
	return info.Id, true, nil
}

// With runs fn inside a login/logout pair. Logout runs exactly once on
// every exit path, panics included, once login succeeded. A login
// failure is returned and fn never runs.
func (s *Session) With(ctx context.Context, fn func(*Session) error) error {
	if err := s.Login(ctx); err != nil {
		return err
	}
	defer func() {
		if err := s.Logout(ctx); err != nil {
			s.logger.Warn("logout failed", logfields.Error(err))
		}
	}()
	return fn(s)
}
