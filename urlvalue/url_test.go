package urlvalue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		u := NewHost("example.com")

		assert.Equal(t, "example.com", u.Host())
		assert.Equal(t, "/", u.Directory())
		assert.Equal(t, "", u.Path())
		assert.Equal(t, []string{""}, u.Components())
		assert.False(t, u.IsAbsolute())

		_, ok := u.Scheme()
		assert.False(t, ok)
		_, ok = u.Format()
		assert.False(t, ok)
	})

	t.Run("empty directory kept verbatim", func(t *testing.T) {
		u := New("example.com", "")
		assert.Equal(t, "", u.Directory())
		assert.Equal(t, "", u.Build(false))
		assert.Equal(t, "p", u.SetPath("p").Build(false))
	})

	t.Run("build without mutation yields directory", func(t *testing.T) {
		for _, dir := range []string{"", "/", "/directory/", "/a/b/", "dir"} {
			assert.Equal(t, dir, New("example.com", dir).Build(false))
		}
	})

	t.Run("round trip without format", func(t *testing.T) {
		for _, dir := range []string{"", "/", "/directory/"} {
			for _, p := range []string{"", "a", "a/b", "a/b/"} {
				assert.Equal(t, dir+p, New("example.com", dir).SetPath(p).Build(false))
			}
		}
	})
}

func TestSetPath(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		wantPath   string
		wantFormat string
		hasFormat  bool
		wantComps  []string
	}{
		{name: "plain", path: "a/b", wantPath: "a/b", wantComps: []string{"a", "b"}},
		{name: "with format", path: "a/b.json", wantPath: "a/b", wantFormat: "json", hasFormat: true, wantComps: []string{"a", "b"}},
		{name: "last dot wins", path: "archive.tar.gz", wantPath: "archive.tar", wantFormat: "gz", hasFormat: true, wantComps: []string{"archive.tar"}},
		{name: "dot in directory segment", path: "v1.2/items", wantPath: "v1.2/items", wantComps: []string{"v1.2", "items"}},
		{name: "query stripped", path: "search?q=go", wantPath: "search", wantComps: []string{"search"}},
		{name: "query stripped before format", path: "feed.xml?page=2", wantPath: "feed", wantFormat: "xml", hasFormat: true, wantComps: []string{"feed"}},
		{name: "trailing slash", path: "a/b/", wantPath: "a/b/", wantComps: []string{"a", "b", ""}},
		{name: "empty", path: "", wantPath: "", wantComps: []string{""}},
		{name: "dot file", path: ".htaccess", wantPath: "", wantFormat: "htaccess", hasFormat: true, wantComps: []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := NewHost("example.com").SetPath(tt.path)

			assert.Equal(t, tt.wantPath, u.Path())
			assert.Equal(t, tt.wantComps, u.Components())

			format, ok := u.Format()
			assert.Equal(t, tt.hasFormat, ok)
			assert.Equal(t, tt.wantFormat, format)
		})
	}

	t.Run("path without dot keeps previous format", func(t *testing.T) {
		u := NewHost("example.com").SetPath("a.html").SetPath("a/b")

		format, ok := u.Format()
		assert.True(t, ok)
		assert.Equal(t, "html", format)
		assert.Equal(t, "a/b", u.Path())
	})

	t.Run("explicit format overrides extracted one", func(t *testing.T) {
		u := NewHost("example.com").SetPath("a.html").SetFormat("json")

		format, _ := u.Format()
		assert.Equal(t, "json", format)
		assert.Equal(t, "/a.json", u.Build(false))
	})

	t.Run("components slice is a copy", func(t *testing.T) {
		u := NewHost("example.com").SetPath("a/b")
		comps := u.Components()
		comps[0] = "changed"

		c, err := u.Component(0)
		require.NoError(t, err)
		assert.Equal(t, "a", c)
	})
}

func TestComponent(t *testing.T) {
	u := NewHost("example.com").SetPath("users/42/edit")

	tests := []struct {
		index   int
		want    string
		wantErr bool
	}{
		{index: 0, want: "users"},
		{index: 1, want: "42"},
		{index: 2, want: "edit"},
		{index: 3, wantErr: true},
		{index: -1, wantErr: true},
	}

	for _, tt := range tests {
		got, err := u.Component(tt.index)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrComponentOutOfRange)
			assert.Empty(t, got)
			continue
		}

		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestParameters(t *testing.T) {
	t.Run("get missing parameter", func(t *testing.T) {
		_, err := NewHost("example.com").Parameter("missing")
		assert.ErrorIs(t, err, ErrParameterNotFound)
	})

	t.Run("overwrite keeps position", func(t *testing.T) {
		u := NewHost("example.com").
			SetParameter("a", "1").
			SetParameter("b", "2").
			SetParameter("a", "3")

		assert.Equal(t, []Param{{"a", "3"}, {"b", "2"}}, u.Parameters())

		v, err := u.Parameter("a")
		require.NoError(t, err)
		assert.Equal(t, "3", v)
	})

	t.Run("has parameter", func(t *testing.T) {
		u := NewHost("example.com").
			SetParameter("set", "value").
			SetParameter("empty", "").
			SetParameter("zero", "0")

		assert.True(t, u.HasParameter("set"))
		assert.False(t, u.HasParameter("empty"))
		assert.False(t, u.HasParameter("zero"))
		assert.False(t, u.HasParameter("never"))

		_, err := u.Parameter("empty")
		assert.NoError(t, err)
	})

	t.Run("bulk set from map is sorted", func(t *testing.T) {
		u := NewHost("example.com").SetParameters(map[string]string{"key2": "value2", "key": "value"})
		assert.Equal(t, []Param{{"key", "value"}, {"key2", "value2"}}, u.Parameters())
	})

	t.Run("remove is idempotent", func(t *testing.T) {
		u := NewHost("example.com").SetParameter("a", "1").SetParameter("b", "2")

		u.RemoveParameter("a").RemoveParameter("a").RemoveParameter("missing")
		assert.Equal(t, []Param{{"b", "2"}}, u.Parameters())

		u.ClearParameters().ClearParameters()
		assert.Empty(t, u.Parameters())
		assert.Equal(t, "/", u.Build(false))
	})

	t.Run("set query keeps order", func(t *testing.T) {
		u := NewHost("example.com")
		require.NoError(t, u.SetQuery("z=1&a=two+words&z=3&flag&&q=%2Fx"))

		assert.Equal(t, []Param{{"z", "3"}, {"a", "two words"}, {"flag", ""}, {"q", "/x"}}, u.Parameters())
	})

	t.Run("set query rejects bad escapes", func(t *testing.T) {
		err := NewHost("example.com").SetQuery("a=%zz")
		assert.ErrorIs(t, err, ErrInvalidQuery)
	})
}

func TestAbsoluteSideEffects(t *testing.T) {
	tests := []struct {
		name string
		set  func(*URL)
		want string
	}{
		{name: "port", set: func(u *URL) { u.SetPort(8000) }, want: "//example.com:8000/path"},
		{name: "user", set: func(u *URL) { u.SetUser("username") }, want: "//username@example.com/path"},
		{name: "password without user", set: func(u *URL) { u.SetPassword("secret") }, want: "//example.com/path"},
		{name: "user and password", set: func(u *URL) { u.SetUser("username").SetPassword("password") }, want: "//username:password@example.com/path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := NewHost("example.com")
			tt.set(u)

			assert.True(t, u.IsAbsolute())
			assert.Equal(t, tt.want, u.BuildPath("path", false))
		})
	}

	t.Run("absolute can be switched off explicitly", func(t *testing.T) {
		u := NewHost("example.com").SetPort(8000).SetAbsolute(false)
		assert.Equal(t, "/path", u.BuildPath("path", false))
	})
}

func TestClone(t *testing.T) {
	orig := New("example.com", "/dir/").
		SetScheme("https").
		SetPort(443).
		SetPath("a/b.json").
		SetParameter("k", "v").
		SetFragment("top")

	c := orig.Clone()
	c.SetScheme("http").SetPort(80).SetPath("c").SetFormat("xml").SetParameter("k", "other").SetFragment("bottom")

	assert.Equal(t, "https://example.com:443/dir/a/b.json?k=v#top", orig.Build(true))
	assert.Equal(t, "http://example.com:80/dir/c.xml?k=other#bottom", c.Build(true))
}

func TestCloneWithoutParameters(t *testing.T) {
	orig := NewHost("example.com").SetPath("a")

	c := orig.Clone().SetParameter("k", "v")
	orig.SetParameter("x", "1")

	assert.Equal(t, "/a?x=1", orig.Build(false))
	assert.Equal(t, "/a?k=v", c.Build(false))
	assert.False(t, orig.HasParameter("k"))
}
