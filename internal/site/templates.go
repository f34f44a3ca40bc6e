package site

// pageTemplate is the fixed page skeleton. It owns every container
// (navbar, hero, the four content sections, footer); the renderers only
// supply what goes inside them. Container ids double as the same-page
// anchor targets used by the nav links and the chrome script.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{if .Brand}}{{.Brand}}{{else}}Welcome{{end}}</title>
  <link rel="stylesheet" href="style.css">
</head>
<body id="home">
  <nav class="navbar" id="navbar">
    <div class="nav-inner">
      <a href="#home" class="nav-brand" id="nav-brand">{{.Brand}}</a>
      <button class="nav-toggle" id="nav-toggle" aria-label="Toggle navigation">
        <span></span><span></span><span></span>
      </button>
      <ul class="nav-menu" id="nav-menu">
        <li><a href="#about" class="nav-link">About</a></li>
        <li><a href="#menu" class="nav-link">Menu</a></li>
        <li><a href="#services" class="nav-link">Services</a></li>
        <li><a href="#contact" class="nav-link">Contact</a></li>
      </ul>
    </div>
  </nav>
  <header class="hero" id="hero">
    <div class="hero-content">{{.Hero}}</div>
  </header>
  <section class="section about" id="about">
    <div class="container">{{.About}}</div>
  </section>
  <section class="section menu" id="menu">
    <div class="container">{{.Menu}}</div>
  </section>
  <section class="section services" id="services">
    <div class="container">{{.Services}}</div>
  </section>
  <section class="section contact" id="contact">
    <div class="container">{{.Contact}}</div>
  </section>
  <footer class="footer" id="footer">
    <div class="container">{{.Footer}}</div>
  </footer>
  <script src="script.js"></script>
</body>
</html>
`

// cssContent is the stylesheet written next to the generated page.
const cssContent = `/* ============ Variables ============ */
:root {
  --bg: #fffdf8;
  --bg-alt: #f6f1e7;
  --text: #2b2420;
  --text-muted: #7a6f63;
  --accent: #b5543b;
  --accent-hover: #97432e;
  --border: #e5dccb;
  --navbar-height: 64px;
  --shadow: 0 2px 10px rgba(43, 36, 32, 0.08);
}

* { margin: 0; padding: 0; box-sizing: border-box; }

html { scroll-behavior: smooth; }

body {
  font-family: Georgia, 'Times New Roman', serif;
  background: var(--bg);
  color: var(--text);
  line-height: 1.6;
}

.container {
  max-width: 960px;
  margin: 0 auto;
  padding: 0 1.5rem;
}

/* ============ Navbar ============ */
.navbar {
  position: fixed;
  top: 0;
  left: 0;
  right: 0;
  height: var(--navbar-height);
  background: transparent;
  transition: background 0.25s ease, box-shadow 0.25s ease;
  z-index: 100;
}

.navbar.scrolled {
  background: var(--bg);
  box-shadow: var(--shadow);
}

.nav-inner {
  max-width: 960px;
  margin: 0 auto;
  height: 100%;
  padding: 0 1.5rem;
  display: flex;
  align-items: center;
  justify-content: space-between;
}

.nav-brand {
  font-size: 1.3rem;
  font-weight: bold;
  color: var(--text);
  text-decoration: none;
}

.nav-menu {
  display: flex;
  gap: 1.5rem;
  list-style: none;
}

.nav-link {
  color: var(--text);
  text-decoration: none;
  font-size: 0.95rem;
}

.nav-link:hover { color: var(--accent); }

.nav-toggle {
  display: none;
  flex-direction: column;
  gap: 4px;
  background: none;
  border: none;
  cursor: pointer;
  padding: 6px;
}

.nav-toggle span {
  width: 22px;
  height: 2px;
  background: var(--text);
  transition: transform 0.2s ease, opacity 0.2s ease;
}

.nav-toggle.open span:nth-child(1) { transform: translateY(6px) rotate(45deg); }
.nav-toggle.open span:nth-child(2) { opacity: 0; }
.nav-toggle.open span:nth-child(3) { transform: translateY(-6px) rotate(-45deg); }

@media (max-width: 720px) {
  .nav-toggle { display: flex; }

  .nav-menu {
    position: fixed;
    top: var(--navbar-height);
    left: 0;
    right: 0;
    flex-direction: column;
    gap: 0;
    background: var(--bg);
    box-shadow: var(--shadow);
    max-height: 0;
    overflow: hidden;
    transition: max-height 0.25s ease;
  }

  .nav-menu.open { max-height: 16rem; }

  .nav-menu li { border-top: 1px solid var(--border); }

  .nav-link { display: block; padding: 0.9rem 1.5rem; }
}

/* ============ Hero ============ */
.hero {
  min-height: 70vh;
  display: flex;
  align-items: center;
  justify-content: center;
  text-align: center;
  background: var(--bg-alt);
  padding: calc(var(--navbar-height) + 2rem) 1.5rem 3rem;
}

.hero-title { font-size: 2.8rem; margin-bottom: 0.5rem; }
.hero-tagline { font-size: 1.3rem; color: var(--text-muted); margin-bottom: 0.3rem; }
.hero-subtitle { color: var(--text-muted); margin-bottom: 1.5rem; }

.btn {
  display: inline-block;
  padding: 0.7rem 1.8rem;
  border-radius: 3px;
  text-decoration: none;
  font-size: 1rem;
}

.btn-primary { background: var(--accent); color: #fff; }
.btn-primary:hover { background: var(--accent-hover); }

/* ============ Sections ============ */
.section { padding: 4rem 0; }
.section:nth-of-type(even) { background: var(--bg-alt); }

.section-title {
  font-size: 2rem;
  text-align: center;
  margin-bottom: 2rem;
}

/* About */
.about-text p { margin-bottom: 1rem; }

.about-features {
  display: flex;
  flex-wrap: wrap;
  gap: 1rem;
  margin-top: 1.5rem;
}

.feature {
  display: flex;
  align-items: center;
  gap: 0.5rem;
  background: var(--bg);
  border: 1px solid var(--border);
  border-radius: 3px;
  padding: 0.6rem 1rem;
}

/* Menu */
.menu-category { margin-bottom: 2rem; }

.category-name {
  font-size: 1.3rem;
  color: var(--accent);
  border-bottom: 1px solid var(--border);
  padding-bottom: 0.4rem;
  margin-bottom: 0.8rem;
}

.menu-items { list-style: none; }

.menu-item {
  display: flex;
  justify-content: space-between;
  gap: 1rem;
  padding: 0.5rem 0;
}

.item-description { color: var(--text-muted); text-align: right; }

.menu-note {
  margin-top: 1rem;
  font-style: italic;
  color: var(--text-muted);
  text-align: center;
}

/* Services */
.service-cards {
  display: grid;
  grid-template-columns: repeat(auto-fit, minmax(220px, 1fr));
  gap: 1.2rem;
}

.service-card {
  background: var(--bg);
  border: 1px solid var(--border);
  border-radius: 3px;
  padding: 1.5rem;
  text-align: center;
}

.service-icon { font-size: 2rem; display: block; margin-bottom: 0.6rem; }
.service-name { margin-bottom: 0.4rem; }
.service-description { color: var(--text-muted); font-size: 0.95rem; }

/* Contact */
.contact-details {
  display: grid;
  grid-template-columns: repeat(auto-fit, minmax(220px, 1fr));
  gap: 1rem;
  margin-bottom: 2rem;
}

.contact-detail {
  display: flex;
  align-items: center;
  gap: 0.6rem;
}

.detail-label { font-weight: bold; }
.detail-value { color: var(--text-muted); text-decoration: none; }
a.detail-value:hover { color: var(--accent); }

.contact-cta { text-align: center; }
.cta-text { margin-bottom: 1rem; color: var(--text-muted); }

/* Footer */
.footer {
  background: var(--text);
  color: var(--bg-alt);
  text-align: center;
  padding: 1.5rem 0;
  font-size: 0.9rem;
}
`
