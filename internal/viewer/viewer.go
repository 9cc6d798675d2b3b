// FilePath: internal/viewer/viewer.go

// Package viewer renders the browser-facing pages: a login form and a
// small polling dashboard. It is presentation only; everything it shows
// comes from the read endpoints, which it calls with the credential the
// user typed into the form.
package viewer

import (
	"html/template"
	"io"
)

// Pages renders the HTML surface of the service.
type Pages struct {
	login   *template.Template
	viewer  *template.Template
	invalid *template.Template
}

// New parses the built-in page templates.
func New() *Pages {
	return &Pages{
		login:   template.Must(template.New("login").Parse(loginTemplate)),
		viewer:  template.Must(template.New("viewer").Parse(viewerTemplate)),
		invalid: template.Must(template.New("invalid").Parse(invalidTemplate)),
	}
}

// Login renders the key entry form.
func (p *Pages) Login(w io.Writer) error {
	return p.login.Execute(w, nil)
}

// Viewer renders the dashboard with the supplied credential embedded
// client-side, so the page can poll the read endpoints itself.
func (p *Pages) Viewer(w io.Writer, apiKey string) error {
	return p.viewer.Execute(w, struct{ APIKey string }{APIKey: apiKey})
}

// Invalid renders the rejection page shown for a wrong key.
func (p *Pages) Invalid(w io.Writer) error {
	return p.invalid.Execute(w, nil)
}

const loginTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>lastseen</title>
</head>
<body>
  <h2>lastseen</h2>
  <form method="POST" action="/">
    <label for="key">Access key</label>
    <input type="password" id="key" name="key" autofocus>
    <button type="submit">View</button>
  </form>
</body>
</html>
`

const viewerTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>lastseen</title>
</head>
<body>
  <h2>Last known state</h2>
  <div id="location">loading…</div>
  <div id="connection"></div>
  <script>
    const apiKey = {{.APIKey}};

    async function refresh() {
      try {
        const res = await fetch("/location?api_key=" + encodeURIComponent(apiKey));
        if (res.ok) {
          const loc = await res.json();
          let text = "Location: " + loc.lat + ", " + loc.lon +
            " (at " + loc.time + " on " + loc.date + ")";
          if (loc.acc !== undefined) {
            text += " ±" + loc.acc + "m";
          }
          document.getElementById("location").textContent = text;
        } else if (res.status === 404) {
          document.getElementById("location").textContent = "No location reported yet";
        }
      } catch (e) {
        document.getElementById("location").textContent = "Unreachable";
      }

      try {
        const res = await fetch("/connection?api_key=" + encodeURIComponent(apiKey));
        if (res.ok) {
          const conn = await res.json();
          document.getElementById("connection").textContent =
            "Last heartbeat: " + conn.time + " on " + conn.date;
        } else if (res.status === 404) {
          document.getElementById("connection").textContent = "No heartbeat reported yet";
        }
      } catch (e) {
        // keep the previous value
      }
    }

    refresh();
    setInterval(refresh, 15000);
  </script>
</body>
</html>
`

const invalidTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>lastseen</title>
</head>
<body>
  <h2>Invalid key</h2>
  <p>The access key you entered is not valid. <a href="/">Try again</a></p>
</body>
</html>
`
