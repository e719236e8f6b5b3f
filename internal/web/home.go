package web

import (
	"context"
	"io"
	"net/url"

	"github.com/a-h/templ"
)

func Home(scripts []ScriptSummary, pagination PaginationData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(ctx, w)
		hw.raw(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1"/>
    <title>Script Sheets</title>
    <link rel="stylesheet"`, attr("href", StylesheetPath()), `/>
  </head>
  <body>
    <main class="shell">
      <header class="hero">
        <h1>Script Sheets</h1>
        <p>Upload a script and print its character sheet, back cover and night order.</p>
      </header>

      <section class="panel">
        <h2>Upload a script</h2>
        <form id="uploadForm">
          <textarea name="script" rows="10" cols="80" placeholder='[{"id": "_meta", "name": "My Script"}, "washerwoman"]' required></textarea>
          <button type="submit">Save script</button>
        </form>
        <div id="uploadResult" class="result"></div>
      </section>

      <section class="panel">
        <h2>Saved scripts</h2>
`)
		hw.component(ScriptList(scripts))
		hw.component(pager(pagination))
		hw.raw(`
      </section>
    </main>

    <script>
      const uploadForm = document.getElementById("uploadForm");
      const uploadResult = document.getElementById("uploadResult");

      uploadForm.addEventListener("submit", async (event) => {
        event.preventDefault();
        uploadResult.textContent = "Saving script...";
        let script;
        try {
          script = JSON.parse(uploadForm.elements.script.value);
        } catch (err) {
          uploadResult.textContent = "Script is not valid JSON.";
          return;
        }
        const res = await fetch("/api/scripts", {
          method: "POST",
          headers: { "Content-Type": "application/json" },
          body: JSON.stringify({ script })
        });
        const data = await res.json();
        if (!res.ok) {
          uploadResult.textContent = data.error || "Failed to save script.";
          return;
        }
        window.location = "/sheets/" + encodeURIComponent(data.script_id);
      });
    </script>
  </body>
</html>
`)
		return hw.err
	})
}

func ScriptList(scripts []ScriptSummary) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(ctx, w)
		if len(scripts) == 0 {
			hw.raw(`<p class="empty">No scripts saved yet.</p>`)
			return hw.err
		}
		hw.raw(`<ul class="script-list">`)
		for _, item := range scripts {
			hw.raw(`<li><a`, attr("href", "/sheets/"+url.PathEscape(item.ID)), `>`)
			hw.text(item.Title)
			hw.raw(`</a>`)
			if item.Author != "" {
				hw.raw(` <span class="author">by `)
				hw.text(item.Author)
				hw.raw(`</span>`)
			}
			hw.raw(` <span class="meta">`, itoa(item.Characters), ` characters, updated `)
			hw.text(formatTime(item.UpdatedAt))
			hw.raw(`</span></li>`)
		}
		hw.raw(`</ul>`)
		return hw.err
	})
}

func pager(p PaginationData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(ctx, w)
		if p.TotalPages <= 1 {
			return nil
		}
		hw.raw(`<nav class="pager">`)
		if p.HasPrev {
			hw.raw(`<a`, attr("href", pageURL(p.BasePath, p.PrevPage, p.PerPage)), `>Previous</a>`)
		}
		hw.raw(` <span>Page `, itoa(p.Page), ` of `, itoa(p.TotalPages), `</span> `)
		if p.HasNext {
			hw.raw(`<a`, attr("href", pageURL(p.BasePath, p.NextPage, p.PerPage)), `>Next</a>`)
		}
		hw.raw(`</nav>`)
		return hw.err
	})
}
