package site

// pageTemplate renders the whole portfolio page.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Profile.Owner.Name}} - {{.Profile.Owner.Credential}}</title>
  <meta name="description" content="{{.Profile.Owner.Intro}}">
  <link rel="stylesheet" href="{{.BasePath}}style.css">
</head>
<body data-active="{{.State.Active}}"{{if .LiveURL}} data-live="{{.LiveURL}}"{{end}}>
  <header class="site-header">
    <div class="container header-bar">
      <a href="#hero" class="brand" data-nav="hero">{{.Profile.Owner.Name}}</a>
      <nav class="nav-desktop" aria-label="Primary">
        {{- range .Links}}
        <a href="{{.Href}}" class="nav-link{{if eq .ID $.State.Active}} active{{end}}" data-nav="{{.ID}}" data-section="{{.ID}}">{{.Label}}</a>
        {{- end}}
      </nav>
      <button class="menu-toggle" id="menu-toggle" type="button" aria-label="Toggle menu" aria-controls="mobile-menu" aria-expanded="{{if .State.MenuOpen}}true{{else}}false{{end}}">
        <span></span><span></span><span></span>
      </button>
    </div>
    <nav class="mobile-menu{{if .State.MenuOpen}} open{{end}}" id="mobile-menu" aria-label="Mobile">
      {{- range .Links}}
      <a href="{{.Href}}" class="nav-link{{if eq .ID $.State.Active}} active{{end}}" data-nav="{{.ID}}" data-section="{{.ID}}">{{.Label}}</a>
      {{- end}}
    </nav>
  </header>

  <main>
    <section id="hero" class="hero">
      <div class="container hero-grid">
        <div class="hero-copy">
          <span class="pill">{{.Profile.Owner.Badge}}</span>
          <h1>Hi, I'm <span class="gradient-text">{{.Profile.Owner.Name}}</span></h1>
          <p class="lead">{{.Profile.Owner.Intro}}</p>
          <div class="actions">
            <a href="#projects" class="btn btn-primary" data-nav="projects">View My Projects</a>
            {{- with .Profile.Owner.ResumeURL}}
            <a href="{{.}}" class="btn btn-outline" target="_blank" rel="noopener">Download Resume</a>
            {{- end}}
          </div>
          <div class="social">
            {{- range .Profile.Links}}
            <a href="{{.URL}}" class="social-link social-{{.Kind}}"{{if ne .Kind "email"}} target="_blank" rel="noopener"{{end}} aria-label="{{.Label}}">{{.Label}}</a>
            {{- end}}
          </div>
        </div>
        <div class="hero-portrait">
          <img src="{{.Profile.Owner.Avatar}}" width="400" height="400" alt="{{.Profile.Owner.Name}}">
        </div>
      </div>
    </section>

    <section id="about" class="section section-white">
      <div class="container narrow">
        <div class="section-head">
          <h2>{{.Profile.About.Heading}}</h2>
          <p>{{.Profile.About.Subheading}}</p>
        </div>
        <div class="about-grid">
          <div class="prose">{{markdown .Profile.About.Paragraphs}}</div>
          <aside class="about-cards">
            {{- with .Profile.About.Education}}
            <div class="card">
              <h3>Education</h3>
              <h4>{{.Degree}}</h4>
              <p class="muted">{{.Institution}}</p>
              <p class="muted small">{{.Period}}</p>
              {{- if .Highlight}}<span class="badge badge-teal">{{.Highlight}}</span>{{end}}
            </div>
            {{- end}}
            {{- if .Profile.About.Achievements}}
            <div class="card">
              <h3>Achievements</h3>
              <ul class="dots">
                {{- range .Profile.About.Achievements}}
                <li>{{.}}</li>
                {{- end}}
              </ul>
            </div>
            {{- end}}
          </aside>
        </div>
      </div>
    </section>

    <section id="skills" class="section section-slate">
      <div class="container">
        <div class="section-head">
          <h2>Skills &amp; Technologies</h2>
          <p>Technologies I work with and tools I use</p>
        </div>
        <div class="skills-grid">
          {{- range .Profile.Skills}}
          <div class="card skill-group" data-icon="{{.Icon}}">
            <h3>{{.Title}}</h3>
            {{- if .Leveled}}
            {{- range .Skills}}
            <div class="skill">
              <div class="skill-head"><span>{{.Name}}</span><span class="muted">{{.Level}}%</span></div>
              <div class="bar"><div class="bar-fill" style="width: {{.Level}}%"></div></div>
            </div>
            {{- end}}
            {{- else}}
            <div class="badges">
              {{- range .Skills}}
              <span class="badge">{{.Name}}</span>
              {{- end}}
            </div>
            {{- end}}
          </div>
          {{- end}}
        </div>
      </div>
    </section>

    <section id="projects" class="section section-white">
      <div class="container">
        <div class="section-head">
          <h2>Featured Projects</h2>
          <p>Some of my recent work and personal projects</p>
        </div>
        <div class="projects-grid">
          {{- range .Profile.Projects}}
          <article class="card project{{if .Featured}} featured{{end}}">
            <div class="project-image">
              <img src="{{if .Image}}{{.Image}}{{else}}/placeholder.svg{{end}}" width="300" height="200" alt="{{.Title}}">
              {{- if .Featured}}<span class="badge badge-featured">Featured</span>{{end}}
            </div>
            <h3>{{.Title}}</h3>
            <p class="muted">{{.Description}}</p>
            <div class="badges">
              {{- range .Technologies}}
              <span class="badge">{{.}}</span>
              {{- end}}
            </div>
            <div class="project-links">
              {{- with .GitHub}}<a href="{{.}}" class="btn btn-outline btn-sm" target="_blank" rel="noopener">Code</a>{{end}}
              {{- with .Demo}}<a href="{{.}}" class="btn btn-primary btn-sm" target="_blank" rel="noopener">Demo</a>{{end}}
            </div>
          </article>
          {{- end}}
        </div>
      </div>
    </section>

    <section id="contact" class="section section-gradient">
      <div class="container">
        <div class="section-head">
          <h2>{{.Profile.Contact.Heading}}</h2>
          <p>{{.Profile.Contact.Intro}}</p>
        </div>
        <div class="contact-grid">
          <div class="contact-details">
            <h3>Let's Connect</h3>
            <dl>
              {{- with .Profile.Contact.Email}}<div><dt>Email</dt><dd>{{.}}</dd></div>{{end}}
              {{- with .Profile.Contact.Phone}}<div><dt>Phone</dt><dd>{{.}}</dd></div>{{end}}
              {{- with .Profile.Contact.Location}}<div><dt>Location</dt><dd>{{.}}</dd></div>{{end}}
            </dl>
            <h4>Follow Me</h4>
            <div class="actions">
              {{- range .Profile.Links}}{{if ne .Kind "email"}}
              <a href="{{.URL}}" class="btn btn-outline" target="_blank" rel="noopener">{{.Label}}</a>
              {{- end}}{{end}}
            </div>
          </div>
          <div class="card contact-card">
            <h3>Send Me a Message</h3>
            <p class="muted">I'll get back to you as soon as possible</p>
            <div class="notice" id="form-notice" role="status"{{if not .State.Notice}} hidden{{end}}>{{.State.Notice}}</div>
            <form id="contact-form" method="post"{{if .FormAction}} action="{{.FormAction}}"{{end}}{{if .Endpoint}} data-endpoint="{{.Endpoint}}"{{end}} data-success="{{.SuccessNotice}}" novalidate>
              <div class="field">
                <label for="name">Name</label>
                <input id="name" name="name" type="text" value="{{.State.Form.Name}}" placeholder="Your full name"{{if .State.Errors.Has "name"}} class="invalid"{{end}}>
                <p class="error" data-error-for="name"{{if not (.State.Errors.Has "name")}} hidden{{end}}>{{.State.FieldError "name"}}</p>
              </div>
              <div class="field">
                <label for="email">Email</label>
                <input id="email" name="email" type="email" value="{{.State.Form.Email}}" placeholder="your.email@example.com"{{if .State.Errors.Has "email"}} class="invalid"{{end}}>
                <p class="error" data-error-for="email"{{if not (.State.Errors.Has "email")}} hidden{{end}}>{{.State.FieldError "email"}}</p>
              </div>
              <div class="field">
                <label for="message">Message</label>
                <textarea id="message" name="message" rows="5" placeholder="Tell me about your project or just say hello!"{{if .State.Errors.Has "message"}} class="invalid"{{end}}>{{.State.Form.Message}}</textarea>
                <p class="error" data-error-for="message"{{if not (.State.Errors.Has "message")}} hidden{{end}}>{{.State.FieldError "message"}}</p>
              </div>
              <button type="submit" class="btn btn-primary btn-block">Send Message</button>
            </form>
          </div>
        </div>
      </div>
    </section>
  </main>

  <footer class="site-footer">
    <div class="container footer-bar">
      <p>&copy; {{.Year}} {{.Profile.Owner.Name}}. All rights reserved.</p>
      <nav>
        {{- range .Profile.Footer.Links}}
        <a href="{{.URL}}">{{.Label}}</a>
        {{- end}}
      </nav>
    </div>
  </footer>
  <script src="{{.BasePath}}script.js"></script>
</body>
</html>`

// cssContent is the page stylesheet.
const cssContent = `:root {
  --blue: #1e3a8a;
  --blue-hover: #1e40af;
  --teal: #0d9488;
  --teal-soft: #ccfbf1;
  --teal-ink: #115e59;
  --ink: #0f172a;
  --muted: #475569;
  --line: #e2e8f0;
  --slate-bg: #f8fafc;
  --danger: #ef4444;
  --radius: 12px;
  --header-h: 64px;
}

* { box-sizing: border-box; }
html { scroll-behavior: smooth; scroll-padding-top: var(--header-h); }
body {
  margin: 0;
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif;
  color: var(--ink);
  background: #fff;
  line-height: 1.6;
}
img { max-width: 100%; display: block; }
a { color: inherit; }

.container { width: 100%; max-width: 1200px; margin: 0 auto; padding: 0 1.5rem; }
.narrow { max-width: 960px; }
.muted { color: var(--muted); }
.small { font-size: 0.875rem; }

.site-header {
  position: fixed; top: 0; left: 0; right: 0; z-index: 50;
  background: rgba(255, 255, 255, 0.95);
  backdrop-filter: blur(6px);
  border-bottom: 1px solid var(--line);
}
.header-bar { display: flex; align-items: center; justify-content: space-between; height: var(--header-h); }
.brand { font-weight: 700; font-size: 1.25rem; color: var(--blue); text-decoration: none; }
.nav-desktop { display: flex; gap: 2rem; }
.nav-link { text-decoration: none; font-size: 0.875rem; font-weight: 500; color: var(--muted); padding-bottom: 2px; border-bottom: 2px solid transparent; }
.nav-link:hover { color: var(--blue); }
.nav-link.active { color: var(--blue); border-bottom-color: var(--blue); }

.menu-toggle { display: none; background: none; border: 0; padding: 0.5rem; cursor: pointer; }
.menu-toggle span { display: block; width: 22px; height: 2px; margin: 4px 0; background: var(--ink); }
.mobile-menu { display: none; flex-direction: column; padding: 0.5rem 1.5rem 1rem; border-top: 1px solid var(--line); background: #fff; }
.mobile-menu .nav-link { padding: 0.5rem 0; border-bottom: 0; }
.mobile-menu .nav-link.active { border-bottom: 0; }

.hero { padding: calc(var(--header-h) + 4rem) 0 5rem; background: linear-gradient(135deg, #f8fafc, #eff6ff); }
.hero-grid { display: grid; grid-template-columns: 1fr 1fr; gap: 3rem; align-items: center; min-height: 70vh; }
.pill { display: inline-block; padding: 0.25rem 0.75rem; border-radius: 999px; background: var(--teal-soft); color: var(--teal-ink); font-size: 0.875rem; font-weight: 500; }
.hero h1 { font-size: clamp(2.25rem, 5vw, 3.75rem); line-height: 1.15; margin: 1rem 0; }
.gradient-text { background: linear-gradient(90deg, var(--blue), var(--teal)); -webkit-background-clip: text; background-clip: text; color: transparent; }
.lead { font-size: 1.25rem; color: var(--muted); }
.hero-portrait { display: flex; justify-content: flex-end; }
.hero-portrait img { width: 320px; height: 320px; border-radius: 50%; object-fit: cover; padding: 4px; background: linear-gradient(135deg, var(--blue), var(--teal)); }

.actions { display: flex; flex-wrap: wrap; gap: 1rem; margin: 1.5rem 0; }
.btn { display: inline-flex; align-items: center; justify-content: center; padding: 0.75rem 1.5rem; border-radius: 8px; font-weight: 500; text-decoration: none; border: 1px solid transparent; cursor: pointer; font-size: 1rem; }
.btn-sm { padding: 0.4rem 0.9rem; font-size: 0.875rem; }
.btn-block { width: 100%; }
.btn-primary { background: var(--blue); color: #fff; }
.btn-primary:hover { background: var(--blue-hover); }
.btn-outline { border-color: #cbd5e1; color: #334155; background: #fff; }
.btn-outline:hover { background: var(--slate-bg); }
.social { display: flex; gap: 1.5rem; }
.social-link { color: var(--muted); text-decoration: none; font-size: 0.9rem; }
.social-link:hover { color: var(--blue); }

.section { padding: 5rem 0; }
.section-white { background: #fff; }
.section-slate { background: var(--slate-bg); }
.section-gradient { background: linear-gradient(135deg, #eff6ff, #f0fdfa); }
.section-head { text-align: center; margin-bottom: 3rem; }
.section-head h2 { font-size: clamp(1.875rem, 3vw, 2.25rem); margin: 0 0 0.5rem; }
.section-head p { color: var(--muted); font-size: 1.125rem; margin: 0; }

.card { background: #fff; border: 1px solid var(--line); border-radius: var(--radius); padding: 1.5rem; transition: box-shadow 0.2s; }
.card:hover { box-shadow: 0 10px 25px rgba(15, 23, 42, 0.08); }
.card h3 { margin-top: 0; font-size: 1.125rem; }
.card h4 { margin: 0; }

.about-grid { display: grid; grid-template-columns: 2fr 1fr; gap: 3rem; }
.prose p { font-size: 1.125rem; color: #334155; }
.about-cards { display: flex; flex-direction: column; gap: 1.5rem; }
.dots { list-style: none; margin: 0; padding: 0; }
.dots li { position: relative; padding-left: 1.25rem; margin: 0.5rem 0; font-size: 0.9rem; }
.dots li::before { content: ""; position: absolute; left: 0; top: 0.55em; width: 8px; height: 8px; border-radius: 50%; background: var(--teal); }

.badges { display: flex; flex-wrap: wrap; gap: 0.5rem; }
.badge { display: inline-block; padding: 0.2rem 0.65rem; border-radius: 999px; background: #f1f5f9; color: #334155; font-size: 0.8rem; }
.badge-teal { background: var(--teal-soft); color: var(--teal-ink); }
.badge-featured { position: absolute; top: 1rem; left: 1rem; background: var(--teal); color: #fff; }

.skills-grid { display: grid; grid-template-columns: repeat(2, 1fr); gap: 2rem; }
.skill { margin-bottom: 1rem; }
.skill-head { display: flex; justify-content: space-between; font-size: 0.9rem; margin-bottom: 0.35rem; }
.bar { height: 8px; border-radius: 999px; background: var(--line); overflow: hidden; }
.bar-fill { height: 100%; background: linear-gradient(90deg, var(--blue), var(--teal)); }

.projects-grid { display: grid; grid-template-columns: repeat(3, 1fr); gap: 2rem; }
.project { padding: 0; overflow: hidden; display: flex; flex-direction: column; }
.project > :not(.project-image) { padding-left: 1.5rem; padding-right: 1.5rem; }
.project h3 { margin: 1.25rem 0 0.5rem; }
.project-image { position: relative; }
.project-image img { width: 100%; height: 192px; object-fit: cover; transition: transform 0.3s; }
.project:hover .project-image img { transform: scale(1.05); }
.project-links { display: flex; gap: 0.75rem; padding-top: 1rem; padding-bottom: 1.5rem; margin-top: auto; }

.contact-grid { display: grid; grid-template-columns: 1fr 1fr; gap: 3rem; }
.contact-details dl { margin: 0 0 2rem; }
.contact-details dl div { margin-bottom: 1rem; }
.contact-details dt { font-weight: 600; }
.contact-details dd { margin: 0; color: var(--muted); }
.field { margin-bottom: 1.25rem; }
.field label { display: block; font-size: 0.875rem; font-weight: 500; color: #334155; margin-bottom: 0.25rem; }
.field input, .field textarea { width: 100%; padding: 0.6rem 0.75rem; border: 1px solid #cbd5e1; border-radius: 8px; font: inherit; }
.field input:focus, .field textarea:focus { outline: 2px solid var(--blue); outline-offset: 1px; }
.field .invalid { border-color: var(--danger); }
.error { color: var(--danger); font-size: 0.875rem; margin: 0.25rem 0 0; }
.notice { padding: 0.75rem 1rem; border-radius: 8px; background: var(--teal-soft); color: var(--teal-ink); margin-bottom: 1rem; }

.site-footer { background: var(--ink); color: #cbd5e1; padding: 2rem 0; }
.footer-bar { display: flex; justify-content: space-between; align-items: center; gap: 1rem; flex-wrap: wrap; }
.footer-bar p { margin: 0; }
.footer-bar nav { display: flex; gap: 1.5rem; }
.footer-bar a { text-decoration: none; }
.footer-bar a:hover { color: #fff; }

[hidden] { display: none !important; }

@media (max-width: 960px) {
  .hero-grid, .about-grid, .contact-grid { grid-template-columns: 1fr; }
  .hero-portrait { justify-content: center; }
  .projects-grid { grid-template-columns: repeat(2, 1fr); }
  .project.featured { grid-column: span 2; }
}
@media (max-width: 768px) {
  .nav-desktop { display: none; }
  .menu-toggle { display: block; }
  .mobile-menu.open { display: flex; }
  .skills-grid, .projects-grid { grid-template-columns: 1fr; }
  .project.featured { grid-column: auto; }
}
`

// jsContent drives the page: scroll highlighting, the mobile menu, and the
// contact form. With a live session the server owns the page state;
// without one the same rules run locally.
const jsContent = `(function () {
  "use strict";

  var LOOKAHEAD = 100;
  var SECTIONS = ["hero", "about", "skills", "projects", "contact"];
  var FIELDS = ["name", "email", "message"];
  var EMAIL = /\S+@\S+\.\S+/;

  var body = document.body;
  var menu = document.getElementById("mobile-menu");
  var toggle = document.getElementById("menu-toggle");
  var form = document.getElementById("contact-form");
  var notice = document.getElementById("form-notice");
  var socket = null;

  function measure() {
    var layout = {};
    SECTIONS.forEach(function (id) {
      var el = document.getElementById(id);
      if (el) layout[id] = { top: el.offsetTop, height: el.offsetHeight };
    });
    return layout;
  }

  function locate(offset, layout) {
    var pos = offset + LOOKAHEAD;
    for (var i = 0; i < SECTIONS.length; i++) {
      var b = layout[SECTIONS[i]];
      if (b && pos >= b.top && pos < b.top + b.height) return SECTIONS[i];
    }
    return null;
  }

  function highlight(id) {
    body.setAttribute("data-active", id);
    document.querySelectorAll("[data-section]").forEach(function (a) {
      a.classList.toggle("active", a.getAttribute("data-section") === id);
    });
  }

  function setMenu(open) {
    menu.classList.toggle("open", open);
    toggle.setAttribute("aria-expanded", open ? "true" : "false");
  }

  function scrollToSection(id) {
    var el = document.getElementById(id);
    if (el) el.scrollIntoView({ behavior: "smooth" });
  }

  function send(msg) {
    if (socket && socket.readyState === WebSocket.OPEN) {
      socket.send(JSON.stringify(msg));
      return true;
    }
    return false;
  }

  function reportScroll() {
    var offset = window.scrollY || window.pageYOffset || 0;
    var layout = measure();
    if (send({ type: "scroll", offset: offset, sections: layout })) return;
    var id = locate(offset, layout);
    if (id) highlight(id);
  }

  function connect() {
    var path = body.getAttribute("data-live");
    if (!path || !window.WebSocket) return;
    var proto = location.protocol === "https:" ? "wss:" : "ws:";
    socket = new WebSocket(proto + "//" + location.host + path);
    socket.onopen = reportScroll;
    socket.onmessage = function (ev) {
      var msg;
      try { msg = JSON.parse(ev.data); } catch (e) { return; }
      if (msg.type === "state") {
        highlight(msg.active);
        setMenu(msg.menu_open);
      } else if (msg.type === "scroll_to") {
        scrollToSection(msg.section);
      }
    };
    socket.onclose = function () { socket = null; };
  }

  var framePending = false;
  window.addEventListener("scroll", function () {
    if (framePending) return;
    framePending = true;
    window.requestAnimationFrame(function () {
      framePending = false;
      reportScroll();
    });
  }, { passive: true });

  toggle.addEventListener("click", function () {
    if (!send({ type: "toggle_menu" })) setMenu(!menu.classList.contains("open"));
  });

  document.querySelectorAll("[data-nav]").forEach(function (el) {
    el.addEventListener("click", function (ev) {
      var id = el.getAttribute("data-nav");
      ev.preventDefault();
      if (!send({ type: "navigate", section: id })) {
        setMenu(false);
        scrollToSection(id);
      }
    });
  });

  function validate(data) {
    var errors = {};
    if (!data.name.trim()) errors.name = "Name is required";
    if (!data.email.trim()) errors.email = "Email is required";
    else if (!EMAIL.test(data.email)) errors.email = "Email is invalid";
    if (!data.message.trim()) errors.message = "Message is required";
    return errors;
  }

  function showErrors(errors) {
    FIELDS.forEach(function (f) {
      var slot = form.querySelector('[data-error-for="' + f + '"]');
      var msg = errors[f] || "";
      slot.textContent = msg;
      slot.hidden = !msg;
      form.elements[f].classList.toggle("invalid", !!msg);
    });
  }

  function showNotice(text) {
    notice.textContent = text;
    notice.hidden = !text;
  }

  function succeed(text) {
    FIELDS.forEach(function (f) { form.elements[f].value = ""; });
    showErrors({});
    showNotice(text || form.getAttribute("data-success"));
  }

  form.addEventListener("submit", function (ev) {
    ev.preventDefault();
    var data = {};
    FIELDS.forEach(function (f) { data[f] = form.elements[f].value; });
    showNotice("");

    var endpoint = form.getAttribute("data-endpoint");
    if (!endpoint) {
      var errors = validate(data);
      showErrors(errors);
      if (Object.keys(errors).length === 0) succeed();
      return;
    }

    fetch(endpoint, {
      method: "POST",
      headers: { "Content-Type": "application/json" },
      body: JSON.stringify(data)
    }).then(function (res) {
      return res.json().then(function (payload) { return { status: res.status, payload: payload }; });
    }).then(function (r) {
      if (r.status === 200) {
        succeed(r.payload.message);
      } else if (r.status === 422) {
        showErrors(r.payload.errors || {});
      } else {
        showNotice("Something went wrong. Please try again.");
      }
    }).catch(function () {
      showNotice("Something went wrong. Please try again.");
    });
  });

  highlight(body.getAttribute("data-active") || "hero");
  connect();
})();
`
