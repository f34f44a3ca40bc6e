package render

import "html/template"

// fragmentTemplates holds the markup for every section fragment. The
// surrounding containers (nav, hero, section elements, footer) live in the
// page skeleton; these templates only produce what goes inside them.
const fragmentTemplates = `
{{define "brand"}}{{.}}{{end}}

{{define "hero"}}<h1 class="hero-title">{{.Title}}</h1>
{{if .Tagline}}<p class="hero-tagline">{{.Tagline}}</p>
{{end}}{{if .Subtitle}}<p class="hero-subtitle">{{.Subtitle}}</p>
{{end}}<a href="#menu" class="btn btn-primary">View Menu</a>{{end}}

{{define "about"}}<h2 class="section-title">{{.Title}}</h2>
<div class="about-text">
{{range .Paragraphs}}{{.}}{{end}}</div>
{{if .Features}}<div class="about-features">
{{range .Features}}<div class="feature"><span class="feature-icon">{{.Icon}}</span><span class="feature-text">{{.Text}}</span></div>
{{end}}</div>
{{end}}{{end}}

{{define "menu"}}<h2 class="section-title">{{.Title}}</h2>
{{range .Categories}}<div class="menu-category">
<h3 class="category-name">{{.Name}}</h3>
<ul class="menu-items">
{{range .Items}}<li class="menu-item"><span class="item-name">{{.Name}}</span><span class="item-description">{{.Description}}</span></li>
{{end}}</ul>
</div>
{{end}}{{if .Note}}<div class="menu-note">{{.Note}}</div>
{{end}}{{end}}

{{define "services"}}<h2 class="section-title">{{.Title}}</h2>
<div class="service-cards">
{{range .Items}}<div class="service-card"><span class="service-icon">{{.Icon}}</span><h3 class="service-name">{{.Name}}</h3><p class="service-description">{{.Description}}</p></div>
{{end}}</div>{{end}}

{{define "contact"}}<h2 class="section-title">{{.Title}}</h2>
<div class="contact-details">
{{range .Details}}<div class="contact-detail"><span class="detail-icon">{{.Icon}}</span><span class="detail-label">{{.Label}}</span>{{if .Link}}<a class="detail-value" href="{{.Link}}">{{.Value}}</a>{{else}}<span class="detail-value">{{.Value}}</span>{{end}}</div>
{{end}}</div>
<div class="contact-cta">
{{if .CTAText}}<p class="cta-text">{{.CTAText}}</p>
{{end}}<a class="btn btn-primary" href="{{.CTALink}}">{{.CTAButton}}</a>
</div>{{end}}

{{define "footer"}}<p class="footer-copyright">{{.Copyright}}</p>{{end}}
`

var fragments = template.Must(template.New("fragments").Parse(fragmentTemplates))
