package site

import "fmt"

// navScrollThreshold is the vertical scroll offset in pixels past which
// the navbar gains its scrolled style. The generated script uses a single
// strict comparison, so a position exactly at the threshold is always
// "not scrolled" and the state cannot flicker at the boundary.
const navScrollThreshold = 50

// chromeScriptTemplate is the page chrome: nav toggle, close-on-navigate,
// same-page smooth scroll, and the scroll-driven navbar style. Each
// behavior is an independent, idempotent event reaction over elements the
// skeleton already provides.
const chromeScriptTemplate = `(function() {
  'use strict';

  var navbar = document.getElementById('navbar');
  var toggle = document.getElementById('nav-toggle');
  var menu = document.getElementById('nav-menu');

  if (toggle && menu) {
    toggle.addEventListener('click', function() {
      toggle.classList.toggle('open');
      menu.classList.toggle('open');
    });
    menu.addEventListener('click', function(e) {
      if (e.target.closest('.nav-link')) {
        toggle.classList.remove('open');
        menu.classList.remove('open');
      }
    });
  }

  document.addEventListener('click', function(e) {
    var anchor = e.target.closest('a[href^="#"]');
    if (!anchor) return;
    var href = anchor.getAttribute('href');
    if (href.length < 2) return;
    var target = document.querySelector(href);
    if (!target) return;
    e.preventDefault();
    target.scrollIntoView({ behavior: 'smooth' });
  });

  if (navbar) {
    var onScroll = function() {
      if (window.scrollY > %d) {
        navbar.classList.add('scrolled');
      } else {
        navbar.classList.remove('scrolled');
      }
    };
    window.addEventListener('scroll', onScroll);
    onScroll();
  }
})();
`

// liveReloadSnippet reconnects the page to the dev server's websocket and
// reloads on rebuild notices. Only appended for watch-mode builds.
const liveReloadSnippet = `(function() {
  var proto = location.protocol === 'https:' ? 'wss://' : 'ws://';
  var sock = new WebSocket(proto + location.host + '/livereload');
  sock.onmessage = function(ev) {
    if (ev.data === 'reload') location.reload();
  };
})();
`

// chromeScript returns the script.js contents for the generated site.
func chromeScript(liveReload bool) string {
	js := fmt.Sprintf(chromeScriptTemplate, navScrollThreshold)
	if liveReload {
		js += "\n" + liveReloadSnippet
	}
	return js
}
