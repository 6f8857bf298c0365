package factstore

import (
	"context"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	getter "github.com/hashicorp/go-getter"

	"github.com/teranos/sotkb/errors"
	"github.com/teranos/sotkb/internal/httpclient"
)

// resolvedSource is a readable local file for an import source.
type resolvedSource struct {
	path    string
	remote  bool
	cleanup func()
}

// resolveSource turns a path or URL into a local file.
// Local paths and file:// URLs must name an existing regular file; anything
// go-getter can fetch (http, https, s3, gcs, ...) is downloaded to a temp dir.
func resolveSource(ctx context.Context, source string, client *httpclient.SaferClient) (*resolvedSource, error) {
	if strings.TrimSpace(source) == "" {
		return nil, errors.NewInvalidRequestError("import source is empty")
	}

	local := source
	if strings.HasPrefix(local, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, errors.Wrap(err, "failed to get home directory")
		}
		local = filepath.Join(home, local[2:])
	}

	if _, err := os.Stat(local); err == nil {
		return resolveLocal(source, local)
	}

	pwd, err := os.Getwd()
	if err != nil {
		pwd = "."
	}

	detected, err := getter.Detect(local, pwd, getter.Detectors)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid source %q", source)
	}

	u, err := url.Parse(detected)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse source %q", source)
	}

	if u.Scheme == "" || u.Scheme == "file" {
		p := u.Path
		if u.Scheme == "" {
			p = local
		}
		return resolveLocal(source, p)
	}

	return fetchRemote(ctx, client, source, detected, u)
}

func resolveLocal(source, p string) (*resolvedSource, error) {
	info, err := os.Stat(p)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WithHintf(
				errors.NewNotFoundError("import source %q not found", source),
				"check that %s exists and is readable", p,
			)
		}
		return nil, errors.Mark(errors.Wrapf(err, "import source %q is not readable", source), errors.ErrNotFound)
	}
	if !info.Mode().IsRegular() {
		return nil, errors.NewNotFoundError("import source %q is not a regular file", source)
	}
	return &resolvedSource{path: p, cleanup: func() {}}, nil
}

func fetchRemote(ctx context.Context, client *httpclient.SaferClient, source, detected string, u *url.URL) (*resolvedSource, error) {
	if client.Handles(u.Scheme) {
		if _, err := client.ValidateURL(detected); err != nil {
			return nil, errors.WithHint(
				errors.Mark(errors.Wrapf(err, "import source %q blocked", source), errors.ErrInvalidRequest),
				"only public http(s) hosts can be imported from",
			)
		}
	}

	dir, err := os.MkdirTemp("", "sotkb-import-*")
	if err != nil {
		return nil, errors.Wrap(err, "create download directory")
	}
	cleanup := func() { os.RemoveAll(dir) }

	// Keep the extension so the format can still be detected
	name := path.Base(u.Path)
	if name == "" || name == "/" || name == "." {
		name = "source.nt"
	}
	dst := filepath.Join(dir, name)

	if err := getter.GetFile(dst, detected, getter.WithContext(ctx), getter.WithGetters(getters(client))); err != nil {
		cleanup()
		return nil, errors.Mark(errors.Wrapf(err, "fetch import source %q", source), errors.ErrNotFound)
	}
	return &resolvedSource{path: dst, remote: true, cleanup: cleanup}, nil
}

// getters routes go-getter's http and https downloads through client.
func getters(client *httpclient.SaferClient) map[string]getter.Getter {
	out := make(map[string]getter.Getter, len(getter.Getters))
	for scheme, g := range getter.Getters {
		out[scheme] = g
	}
	httpGetter := &getter.HttpGetter{Client: client.Client}
	out["http"] = httpGetter
	out["https"] = httpGetter
	return out
}
