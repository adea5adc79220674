package site

// pageTemplate is the Go html/template for each exported digest page.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{if .Date}}{{.DateLabel}} | {{end}}{{.Title}}</title>
  <link rel="stylesheet" href="style.css">
  <link rel="stylesheet" href="{{.KaTeXCSS}}">
  <script defer src="{{.KaTeXJS}}"></script>
  <script defer src="{{.KaTeXAutoRender}}" onload="renderMathInElement(document.getElementById('digest'), {{.MathConfig}})"></script>
</head>
<body>
  <header class="masthead">
    <h1><a href="index.html">{{.Title}}</a></h1>
  </header>
  <div class="layout">
    <aside class="sidebar">
      <div class="month-nav">
        {{if .PrevHref}}<a id="prev-month" href="{{.PrevHref}}" aria-label="Previous month">&lsaquo;</a>{{else}}<span id="prev-month" class="disabled">&lsaquo;</span>{{end}}
        <span id="current-month">{{.MonthLabel}}</span>
        {{if .NextHref}}<a id="next-month" href="{{.NextHref}}" aria-label="Next month">&rsaquo;</a>{{else}}<span id="next-month" class="disabled">&rsaquo;</span>{{end}}
      </div>
      <div class="calendar" id="calendar">{{.CalendarHTML}}</div>
      <ul id="date-list">{{.ListHTML}}</ul>
    </aside>
    <main class="content">
      <div id="loading" style="display:none">Loading digest&hellip;</div>
      {{if .Shown}}
      <div id="no-digest" style="display:none">No digest available for this date.</div>
      <article id="digest" class="digest">
        {{with .Meta}}{{if or .Title .Summary .Tags}}<div class="digest-meta">{{if .Title}}<div class="meta-title">{{.Title}}</div>{{end}}{{.Summary}}{{range .Tags}}<span class="tag">{{.}}</span>{{end}}</div>{{end}}{{end}}
        {{.Content}}
      </article>
      {{else}}
      <div id="no-digest">No digest available for this date.</div>
      <article id="digest" class="digest" style="display:none"></article>
      {{end}}
    </main>
  </div>
  <button id="back-to-top" aria-label="Back to top" onclick="window.scrollTo({top: 0, behavior: 'smooth'})">&uarr;</button>
  <script>
    window.addEventListener('scroll', function () {
      document.getElementById('back-to-top').classList.toggle('visible', window.scrollY > 400);
    });
  </script>
</body>
</html>
`
