package site

// pageTemplate is the Go html/template for the quiz page. Each topic
// container's id is the topic id; script.js relies on that.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="{{.AssetBase}}style.css">
</head>
<body{{if .Live}} data-live="true"{{end}}>
  <header class="page-header">
    <h1>{{.Title}}</h1>
    {{if .Live}}<div class="controls">
      <label for="question-count">Questions per topic</label>
      <input type="number" id="question-count" min="0" value="{{.Count}}">
      <button type="button" id="generate-btn"{{if .TriggerDisabled}} disabled{{end}}>{{.TriggerLabel}}</button>
    </div>{{else}}<p class="snapshot-note">Generated {{.GeneratedAt.Format "2006-01-02 15:04"}}. Rebuild for a new set of questions.</p>{{end}}
  </header>
  <main class="topics">
    {{range .Topics}}<section class="topic" aria-labelledby="heading-{{.ID}}">
      <h2 id="heading-{{.ID}}">{{.Title}}</h2>
      <div class="questions-container" id="{{.ID}}">{{.Content}}</div>
    </section>
    {{end}}
  </main>
  <script src="{{.AssetBase}}script.js"></script>
</body>
</html>`

// cssContent is the stylesheet for the quiz page.
const cssContent = `:root {
  --bg: #ffffff;
  --fg: #1f2328;
  --muted: #656d76;
  --border: #d0d7de;
  --accent: #0969da;
  --accent-fg: #ffffff;
  --error: #cf222e;
  --code-bg: #f6f8fa;
}

* { box-sizing: border-box; }

body {
  margin: 0;
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Helvetica, Arial, sans-serif;
  color: var(--fg);
  background: var(--bg);
  line-height: 1.5;
}

.page-header {
  display: flex;
  flex-wrap: wrap;
  align-items: center;
  justify-content: space-between;
  gap: 1rem;
  padding: 1rem 2rem;
  border-bottom: 1px solid var(--border);
}

.page-header h1 { margin: 0; font-size: 1.5rem; }

.controls { display: flex; align-items: center; gap: 0.5rem; }
.controls input { width: 4.5rem; padding: 0.3rem; }

#generate-btn, .solution-toggle {
  cursor: pointer;
  border-radius: 6px;
  border: 1px solid var(--accent);
  padding: 0.35rem 0.8rem;
  font-size: 0.9rem;
}

#generate-btn { background: var(--accent); color: var(--accent-fg); }
#generate-btn:disabled { opacity: 0.6; cursor: progress; }

.snapshot-note { color: var(--muted); margin: 0; }

.topics { padding: 1rem 2rem; display: grid; gap: 2rem; }
.topic h2 { border-bottom: 1px solid var(--border); padding-bottom: 0.3rem; }

.question-list { list-style: none; padding: 0; margin: 0; }
.question-item {
  border: 1px solid var(--border);
  border-radius: 6px;
  padding: 1rem;
  margin-bottom: 1rem;
}
.question-header { color: var(--muted); font-size: 0.85rem; }
.question-number { font-weight: 600; }
.question-text { margin: 0.5rem 0; }

.solution-toggle.solution-hidden { background: var(--bg); color: var(--accent); }
.solution-toggle.solution-visible { background: var(--accent); color: var(--accent-fg); }

.solution-panel {
  margin-top: 0.75rem;
  padding: 0.75rem;
  background: var(--code-bg);
  border-radius: 6px;
}
.solution-panel pre { overflow-x: auto; margin: 0; }
.solution-unavailable { color: var(--muted); font-style: italic; }

.loading { color: var(--muted); }
.error { color: var(--error); }
.empty { color: var(--muted); }
`

// jsContent mirrors the toggle controller in the browser and drives live
// regeneration over /ws/regenerate, falling back to /api/regenerate.
const jsContent = `(function() {
  'use strict';

  var LOADING_TEXT = 'Loading questions...';
  var GENERATING_LABEL = 'Generating...';

  function attachToggleHandlers() {
    var controls = document.querySelectorAll('.solution-toggle');
    controls.forEach(function(btn) {
      if (btn.dataset.bound === 'true') return;
      btn.dataset.bound = 'true';
      btn.addEventListener('click', function() {
        var panel = document.getElementById(btn.dataset.target);
        if (!panel) return;
        var show = panel.hidden;
        panel.hidden = !show;
        btn.textContent = show ? 'Hide Solution' : 'Show Solution';
        btn.classList.toggle('solution-visible', show);
        btn.classList.toggle('solution-hidden', !show);
        btn.setAttribute('aria-expanded', show ? 'true' : 'false');
      });
    });
  }

  var trigger = document.getElementById('generate-btn');
  var countInput = document.getElementById('question-count');

  function setTrigger(label, disabled) {
    if (!trigger) return;
    trigger.textContent = label;
    trigger.disabled = disabled;
  }

  function applyTopic(t) {
    var c = document.getElementById(t.id);
    if (c) c.innerHTML = t.html;
  }

  function showLoading(ids) {
    ids.forEach(function(id) {
      var c = document.getElementById(id);
      if (c) c.innerHTML = '<p class="loading">' + LOADING_TEXT + '</p>';
    });
  }

  function fail(message, label) {
    alert(message);
    setTrigger(label || 'Error - Try Again', false);
  }

  function regenerateHTTP(count) {
    fetch('/api/regenerate?count=' + encodeURIComponent(count))
      .then(function(resp) {
        return resp.json().then(function(body) {
          if (!resp.ok) throw new Error(body.error || ('HTTP ' + resp.status));
          return body;
        });
      })
      .then(function(body) {
        (body.topics || []).forEach(applyTopic);
        attachToggleHandlers();
        setTrigger(body.trigger_label, false);
      })
      .catch(function(err) { fail(err.message); });
  }

  function regenerateWS(count) {
    var proto = location.protocol === 'https:' ? 'wss:' : 'ws:';
    var ws;
    try {
      ws = new WebSocket(proto + '//' + location.host + '/ws/regenerate');
    } catch (e) {
      regenerateHTTP(count);
      return;
    }
    var settled = false;
    ws.onopen = function() {
      ws.send(JSON.stringify({type: 'regenerate', count: count}));
    };
    ws.onmessage = function(ev) {
      var msg = JSON.parse(ev.data);
      switch (msg.type) {
        case 'loading':
          showLoading(msg.topics || []);
          break;
        case 'topic':
          applyTopic(msg);
          break;
        case 'done':
          settled = true;
          attachToggleHandlers();
          setTrigger(msg.trigger_label, false);
          ws.close();
          break;
        case 'error':
          settled = true;
          fail(msg.error, msg.trigger_label);
          ws.close();
          break;
      }
    };
    ws.onerror = function() {
      if (!settled) {
        settled = true;
        regenerateHTTP(count);
      }
    };
    ws.onclose = function() {
      if (!settled) {
        settled = true;
        fail('Connection closed before questions finished loading');
      }
    };
  }

  function regenerate() {
    if (!trigger || trigger.disabled) return;
    var count = countInput ? parseInt(countInput.value, 10) : 5;
    if (isNaN(count) || count < 0) count = 0;
    setTrigger(GENERATING_LABEL, true);
    if (window.WebSocket) {
      regenerateWS(count);
    } else {
      regenerateHTTP(count);
    }
  }

  if (trigger && document.body.dataset.live === 'true') {
    trigger.addEventListener('click', regenerate);
  }
  attachToggleHandlers();
})();
`
