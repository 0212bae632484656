package httpreq

import (
	"errors"
	"net/http"
)

// DefaultMaxMemory is the multipart memory limit used by FromHTTPRequest.
const DefaultMaxMemory = 32 << 20

// FromHTTPRequest builds a Request from r. The URL value is constructed
// from SnapshotFromRequest; headers, cookies and form values are copied.
// A body that is not a form is ignored.
func FromHTTPRequest(r *http.Request, directory string) (*Request, error) {
	u, err := NewURL(SnapshotFromRequest(r), directory)
	if err != nil {
		return nil, err
	}

	req := New(u)
	req.SetHeaders(r.Header)

	for _, c := range r.Cookies() {
		req.SetCookie(c)
	}

	if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return nil, err
	}

	for k, v := range r.PostForm {
		req.SetPost(k, v...)
	}

	if r.MultipartForm != nil {
		req.SetFiles(r.MultipartForm.File)
	}

	return req, nil
}
