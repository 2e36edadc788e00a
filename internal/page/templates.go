package page

// pageTemplate is the Go html/template for the whole site.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.SiteName}} — {{.Venue.Tagline}}</title>
  <link rel="stylesheet" href="{{.StylesheetHref}}">
</head>
<body data-threshold="{{.ScrollThreshold}}" data-live="{{.Live}}" data-static="{{.Static}}" data-tab="{{.State.ActiveCategory}}">
  <header id="site-header" class="site-header{{if .State.Scrolled}} is-scrolled{{end}}">
    <nav class="container nav">
      <a href="#top" class="brand">
        <span class="brand-name"><span class="red">HA</span> <span class="gold">NA</span></span>
        <span class="brand-kanji">花</span>
      </a>
      <div class="nav-links">
        {{range .Nav}}<a href="{{.Href}}">{{.Label}}</a>{{end}}
      </div>
      <a href="#reserve" class="btn btn-primary btn-small">Reserve a Table</a>
    </nav>
  </header>

  <main id="top">
    <section class="hero">
      <div class="container">
        <p class="hero-kanji">手打ち麺</p>
        <h1>{{.Venue.Tagline}}</h1>
        <p class="hero-sub">Handcrafted broths. Slow-cooked 48 hours. {{.Venue.Suburb}}'s best kept secret.</p>
        <div class="hero-actions">
          <a href="#reserve" class="btn btn-primary">Reserve Tonight</a>
          <a href="#menu" class="btn btn-outline">Explore Menu</a>
        </div>
      </div>
      <a href="#story" class="scroll-cue" aria-label="Scroll to story">&#8964;</a>
    </section>

    <section id="story" class="container section split">
      <div>
        <p class="eyebrow">THE BROTH BEHIND THE BOWL</p>
        <h2>Our Story</h2>
        <div class="story">{{.Story}}</div>
        <p class="muted">Est. {{.Venue.Founded}} · {{.Venue.Street}}, {{.Venue.Suburb}}</p>
      </div>
      <div class="stats">
        {{range .Stats}}<article class="card stat"><p class="stat-value">{{.Value}}</p><p>{{.Caption}}</p></article>{{end}}
      </div>
    </section>

    <section id="menu" class="container section">
      <p class="eyebrow">SIGNATURE MENU</p>
      <h2>What We're Known For</h2>
      <div class="tabs" role="tablist">
        {{range .Tabs}}<a href="{{.Href}}" data-tab="{{.Key}}" role="tab" aria-selected="{{.Active}}" class="tab{{if .Active}} is-active{{end}}">{{.Label}}</a>{{end}}
      </div>
      <div id="menu-items" class="menu-grid">
        {{range .Items}}<article class="card menu-card">
          <div class="menu-card-head"><h3>{{.Name}}</h3><span class="price">{{.Price}}</span></div>
          {{if .Description}}<p class="menu-desc">{{.Description}}</p>{{end}}
        </article>{{end}}
      </div>
    </section>

    <section id="gallery" class="container section">
      <p class="eyebrow">ATMOSPHERE</p>
      <h2>Inside Hana</h2>
      <div class="gallery-grid">
        {{range .Gallery}}<article class="gallery-card">
          <img src="{{.Image}}" alt="{{.Label}}" loading="lazy">
          <p>{{.Label}}</p>
        </article>{{end}}
      </div>
    </section>

    <section class="container section">
      <p class="eyebrow">WHAT PEOPLE SAY</p>
      <h2>Guest Reviews</h2>
      <div class="reviews">
        {{range .Testimonials}}<article class="card review">
          <p class="quote-mark">&#8220;</p>
          <p>“{{.Quote}}”</p>
          <p class="gold">— {{.Author}}</p>
        </article>{{end}}
      </div>
    </section>

    <section id="reserve" class="container section">
      <p class="eyebrow">RESERVE A TABLE</p>
      <h2>Book Your Bowl</h2>
      <div class="reserve-grid">
        <div class="card">
          {{if or .Static .Live (not .State.ReservationSubmitted)}}
          <form id="reserve-form" class="reserve-form" method="post" action="{{.FormAction}}"{{if .State.ReservationSubmitted}} hidden{{end}}>
            <input type="hidden" name="tab" value="{{.State.ActiveCategory}}">
            <input required name="name" placeholder="Name" value="{{.Form.Name}}">
            {{with index .FieldErrors "name"}}<p class="field-error">{{.}}</p>{{end}}
            <input required type="email" name="email" placeholder="Email" value="{{.Form.Email}}">
            {{with index .FieldErrors "email"}}<p class="field-error">{{.}}</p>{{end}}
            <input required type="tel" name="phone" placeholder="Phone" value="{{.Form.Phone}}">
            {{with index .FieldErrors "phone"}}<p class="field-error">{{.}}</p>{{end}}
            <input required type="date" name="date" value="{{.Form.Date}}">
            {{with index .FieldErrors "date"}}<p class="field-error">{{.}}</p>{{end}}
            <select required name="time">
              <option value="" disabled{{if not .Form.Time}} selected{{end}}>Select time</option>
              {{range .TimeSlots}}<option value="{{.}}"{{if eq . $.Form.Time}} selected{{end}}>{{.}}</option>{{end}}
            </select>
            {{with index .FieldErrors "time"}}<p class="field-error">{{.}}</p>{{end}}
            <select required name="party_size">
              <option value="" disabled{{if not .Form.PartySize}} selected{{end}}>Party size</option>
              {{range .PartySizes}}<option value="{{.}}"{{if eq . $.Form.PartySize}} selected{{end}}>{{.}}</option>{{end}}
            </select>
            {{with index .FieldErrors "party_size"}}<p class="field-error">{{.}}</p>{{end}}
            <textarea name="requests" rows="4" placeholder="Special requests">{{.Form.Requests}}</textarea>
            <button type="submit" class="btn btn-primary">Reserve My Table</button>
          </form>
          {{end}}
          {{if or .Static .Live .State.ReservationSubmitted}}
          <div id="reserve-confirmation" class="confirmation"{{if not .State.ReservationSubmitted}} hidden{{end}}>
            <p class="confirmation-title">Reservation Request Received</p>
            <p>Arigatou! We'll be in touch shortly to confirm your table at {{.SiteName}}.</p>
            <a id="reserve-another" href="{{.AnotherHref}}" class="btn btn-outline btn-small">Submit another reservation</a>
          </div>
          {{end}}
        </div>
        <aside class="card">
          <h3>Visit Us</h3>
          <p>{{.Venue.Address}}</p>
          <p>{{.Venue.Phone}}</p>
          <div class="hours">
            <p class="gold">Hours</p>
            <ul>{{range .Venue.Hours}}<li>{{.Days}}: {{.Hours}}</li>{{end}}</ul>
          </div>
        </aside>
      </div>
    </section>
  </main>

  <footer class="site-footer">
    <div class="container footer-row">
      <div>
        <p class="brand-name"><span class="red">HA</span> <span class="gold">NA</span></p>
        <p class="muted">{{.Venue.Tagline}}</p>
        <p class="muted small">ABN: {{.Venue.ABN}}</p>
      </div>
      <div class="nav-links">{{range .Nav}}<a href="{{.Href}}">{{.Label}}</a>{{end}}</div>
      <div class="social">
        <a href="{{.Venue.Instagram}}" aria-label="Instagram">IG</a>
        <a href="{{.Venue.Facebook}}" aria-label="Facebook">FB</a>
      </div>
    </div>
    <div class="container muted small footer-legal">
      <p>© {{.Year}} {{.SiteName}}. All rights reserved.</p>
    </div>
  </footer>
  <script>` + scriptContent + `</script>
</body>
</html>`

// scriptContent toggles the header style on scroll. With a live server it
// sends scroll offsets, tab clicks and reservation submits over the view
// channel and applies the state the server sends back. In a static export
// it handles the reservation form in place.
const scriptContent = `
(function () {
  var body = document.body;
  var header = document.getElementById('site-header');
  var threshold = parseInt(body.dataset.threshold, 10) || 30;

  function setScrolled(flag) { header.classList.toggle('is-scrolled', flag); }

  function setTabs(active) {
    document.querySelectorAll('.tab').forEach(function (t) {
      var on = t.dataset.tab === active;
      t.classList.toggle('is-active', on);
      t.setAttribute('aria-selected', on ? 'true' : 'false');
    });
  }

  function setItems(items) {
    var grid = document.getElementById('menu-items');
    grid.textContent = '';
    items.forEach(function (item) {
      var card = document.createElement('article');
      card.className = 'card menu-card';
      var head = document.createElement('div');
      head.className = 'menu-card-head';
      var name = document.createElement('h3');
      name.textContent = item.name;
      var price = document.createElement('span');
      price.className = 'price';
      price.textContent = item.price;
      head.appendChild(name);
      head.appendChild(price);
      card.appendChild(head);
      if (item.description) {
        var desc = document.createElement('p');
        desc.className = 'menu-desc';
        desc.textContent = item.description;
        card.appendChild(desc);
      }
      grid.appendChild(card);
    });
  }

  var form = document.getElementById('reserve-form');
  var done = document.getElementById('reserve-confirmation');
  var another = document.getElementById('reserve-another');

  function setSubmitted(flag) {
    if (flag && !form.hidden) { form.reset(); }
    form.hidden = flag;
    done.hidden = !flag;
  }

  function setFieldErrors(fields) {
    form.querySelectorAll('.field-error').forEach(function (p) { p.remove(); });
    Object.keys(fields || {}).forEach(function (name) {
      var input = form.elements[name];
      if (!input) { return; }
      var p = document.createElement('p');
      p.className = 'field-error';
      p.textContent = fields[name];
      input.insertAdjacentElement('afterend', p);
    });
  }

  function formValues() {
    var values = {};
    ['name', 'email', 'phone', 'date', 'time', 'party_size', 'requests'].forEach(function (name) {
      values[name] = form.elements[name].value;
    });
    return values;
  }

  if (body.dataset.live === 'true' && 'WebSocket' in window) {
    var proto = location.protocol === 'https:' ? 'wss:' : 'ws:';
    var ws = new WebSocket(proto + '//' + location.host + '/ws/view?tab=' + encodeURIComponent(body.dataset.tab));
    var send = function (msg) { if (ws.readyState === 1) { ws.send(JSON.stringify(msg)); } };
    ws.onopen = function () { send({ type: 'scroll', offset: Math.round(window.scrollY) }); };
    ws.onmessage = function (ev) {
      var msg = JSON.parse(ev.data);
      if (msg.type === 'blocked') {
        setFieldErrors(msg.fields);
        return;
      }
      if (msg.type !== 'state') { return; }
      setScrolled(msg.state.scrolled);
      setTabs(msg.state.active_category);
      form.elements.tab.value = msg.state.active_category;
      if (msg.state.reservation_submitted) { setFieldErrors(null); }
      setSubmitted(msg.state.reservation_submitted);
      if (msg.items) { setItems(msg.items); }
    };
    window.addEventListener('scroll', function () {
      send({ type: 'scroll', offset: Math.round(window.scrollY) });
    }, { passive: true });
    document.querySelectorAll('.tab').forEach(function (tab) {
      tab.addEventListener('click', function (e) {
        if (ws.readyState !== 1) { return; }
        e.preventDefault();
        send({ type: 'select', category: tab.dataset.tab });
      });
    });
    // Without an open channel the form posts to /reserve as usual.
    form.addEventListener('submit', function (e) {
      if (ws.readyState !== 1) { return; }
      e.preventDefault();
      send({ type: 'submit', form: formValues() });
    });
    another.addEventListener('click', function (e) {
      if (ws.readyState !== 1) { return; }
      e.preventDefault();
      send({ type: 'reset' });
    });
  } else {
    var onScroll = function () { setScrolled(window.scrollY >= threshold); };
    window.addEventListener('scroll', onScroll, { passive: true });
    onScroll();
  }

  if (body.dataset.static === 'true') {
    form.addEventListener('submit', function (e) {
      e.preventDefault();
      setSubmitted(true);
    });
    another.addEventListener('click', function (e) {
      e.preventDefault();
      setSubmitted(false);
    });
  }
})();
`

// cssContent is the full CSS for the site.
const cssContent = `/* ============ Variables ============ */
:root {
  --bg: #0a0605;
  --panel: rgba(18, 8, 10, 0.62);
  --text: #F5F0EB;
  --muted: #8B7355;
  --red: #C41E3A;
  --red-dark: #a61931;
  --gold: #D4A843;
  --border: rgba(196, 30, 58, 0.25);
}

* { box-sizing: border-box; }
html { scroll-behavior: smooth; }
body { margin: 0; background: var(--bg); color: var(--text); font-family: system-ui, -apple-system, "Segoe UI", sans-serif; line-height: 1.6; }
a { color: inherit; text-decoration: none; }
h1, h2, h3, .brand-name, .stat-value { font-family: "Bebas Neue", Impact, sans-serif; letter-spacing: 0.05em; font-weight: 400; }
h2 { font-size: 2.75rem; margin: 0.5rem 0 1.5rem; }
[hidden] { display: none !important; }

.container { max-width: 72rem; margin: 0 auto; padding: 0 1.25rem; }
.section { padding: 5rem 1.25rem; }
.eyebrow { color: var(--gold); font-size: 0.85rem; letter-spacing: 0.3em; margin: 0; }
.muted { color: var(--muted); }
.small { font-size: 0.75rem; }
.red { color: var(--red); }
.gold { color: var(--gold); }
.card { border: 1px solid var(--border); background: var(--panel); border-radius: 1rem; padding: 1.5rem; }

/* ============ Header ============ */
.site-header { position: fixed; top: 0; width: 100%; z-index: 50; background: transparent; transition: all 0.3s; }
.site-header.is-scrolled { background: rgba(10, 6, 5, 0.95); border-bottom: 1px solid rgba(196, 30, 58, 0.2); backdrop-filter: blur(12px); }
.nav { display: flex; align-items: center; justify-content: space-between; gap: 1rem; padding: 1rem 1.25rem; }
.brand { display: flex; flex-direction: column; align-items: center; line-height: 1; }
.brand-name { font-size: 1.5rem; letter-spacing: 0.25em; margin: 0; }
.brand-kanji { font-size: 0.65rem; letter-spacing: 0.45em; color: var(--muted); margin-top: 0.25rem; }
.nav-links { display: flex; gap: 1.75rem; font-size: 0.9rem; }
.nav-links a:hover { color: var(--gold); }

/* ============ Buttons ============ */
.btn { display: inline-block; border-radius: 999px; padding: 0.75rem 1.75rem; font-size: 0.875rem; font-weight: 600; cursor: pointer; border: 1px solid transparent; transition: all 0.2s; }
.btn-small { padding: 0.6rem 1.25rem; font-size: 0.8rem; }
.btn-primary { background: var(--red); color: #fff; }
.btn-primary:hover { background: var(--red-dark); }
.btn-outline { border-color: rgba(212, 168, 67, 0.55); color: var(--text); background: transparent; }
.btn-outline:hover { border-color: var(--gold); color: var(--gold); }

/* ============ Hero ============ */
.hero { position: relative; min-height: 100vh; display: flex; align-items: center; padding-top: 7rem; background: radial-gradient(circle at 50% 30%, rgba(196, 30, 58, 0.28), transparent 50%); }
.hero-kanji { font-size: 5rem; color: rgba(245, 240, 235, 0.4); margin: 0; line-height: 1; }
.hero h1 { font-size: 4.5rem; margin: 0.5rem 0; }
.hero-sub { font-size: 1.25rem; color: rgba(245, 240, 235, 0.8); max-width: 40rem; }
.hero-actions { display: flex; flex-wrap: wrap; gap: 1rem; margin-top: 2.25rem; }
.scroll-cue { position: absolute; bottom: 2rem; left: 50%; transform: translateX(-50%); color: var(--muted); font-size: 2rem; }

/* ============ Story ============ */
.split { display: grid; gap: 2.5rem; }
.story p { color: rgba(245, 240, 235, 0.85); }
.stats { display: grid; gap: 1rem; }
.stat-value { font-size: 2.5rem; color: var(--gold); margin: 0; }

/* ============ Menu ============ */
.tabs { display: flex; flex-wrap: wrap; gap: 0.75rem; margin-bottom: 2rem; }
.tab { border: 1px solid rgba(196, 30, 58, 0.35); background: #12080A; border-radius: 999px; padding: 0.5rem 1.25rem; font-size: 0.875rem; color: rgba(245, 240, 235, 0.8); }
.tab:hover { border-color: var(--gold); }
.tab.is-active { background: var(--red); border-color: var(--red); color: #fff; }
.menu-grid { display: grid; gap: 1rem; }
.menu-card-head { display: flex; justify-content: space-between; align-items: flex-start; gap: 0.75rem; }
.menu-card h3 { font-size: 1.5rem; margin: 0; }
.price { color: var(--gold); font-weight: 600; font-size: 1.1rem; white-space: nowrap; }
.menu-desc { font-size: 0.875rem; color: rgba(245, 240, 235, 0.75); margin-bottom: 0; }

/* ============ Gallery ============ */
.gallery-grid { display: grid; gap: 1rem; }
.gallery-card { position: relative; height: 14rem; overflow: hidden; border-radius: 1rem; border: 1px solid rgba(196, 30, 58, 0.2); }
.gallery-card img { position: absolute; inset: 0; width: 100%; height: 100%; object-fit: cover; transition: transform 0.7s; }
.gallery-card:hover img { transform: scale(1.05); }
.gallery-card p { position: absolute; bottom: 1rem; left: 1rem; margin: 0; font-size: 1.5rem; font-family: "Bebas Neue", Impact, sans-serif; text-shadow: 0 2px 8px #000; }

/* ============ Reviews ============ */
.reviews { display: grid; gap: 1rem; }
.quote-mark { color: var(--red); font-size: 2.5rem; line-height: 1; margin: 0; }

/* ============ Reserve ============ */
.reserve-grid { display: grid; gap: 2rem; }
.reserve-form { display: grid; gap: 1rem; }
.reserve-form input, .reserve-form select, .reserve-form textarea { width: 100%; background: #0f0809; color: var(--text); border: 1px solid var(--border); border-radius: 0.75rem; padding: 0.75rem 1rem; font: inherit; }
.reserve-form textarea { resize: none; }
.field-error { color: var(--gold); font-size: 0.8rem; margin: -0.5rem 0 0; }
.confirmation { border: 1px solid rgba(212, 168, 67, 0.4); background: #0f0809; border-radius: 0.75rem; padding: 1.5rem; }
.confirmation-title { font-family: "Bebas Neue", Impact, sans-serif; font-size: 1.5rem; color: var(--gold); margin: 0; }
.hours ul { list-style: none; padding: 0; }

/* ============ Footer ============ */
.site-footer { border-top: 1px solid rgba(196, 30, 58, 0.2); background: #0b0606; padding: 2.5rem 0; }
.footer-row { display: flex; flex-direction: column; gap: 1.75rem; }
.social { display: flex; gap: 1rem; color: var(--muted); }
.footer-legal { border-top: 1px solid rgba(196, 30, 58, 0.16); margin-top: 2rem; padding-top: 1.25rem; }

/* ============ Breakpoints ============ */
@media (min-width: 768px) {
  .split { grid-template-columns: 1fr 1fr; }
  .menu-grid { grid-template-columns: 1fr 1fr; }
  .reviews { grid-template-columns: repeat(3, 1fr); }
  .reserve-grid { grid-template-columns: 1.5fr 1fr; }
  .footer-row { flex-direction: row; align-items: center; justify-content: space-between; }
  .hero-kanji { font-size: 8rem; }
}
@media (min-width: 640px) {
  .gallery-grid { grid-template-columns: repeat(2, 1fr); }
}
@media (min-width: 1024px) {
  .gallery-grid { grid-template-columns: repeat(3, 1fr); }
}
@media (max-width: 767px) {
  .nav .nav-links { display: none; }
}
`
