package generation

import "strings"

// fixMarker is present in both injected blocks; ApplyFixes uses it to detect
// a page that already carries the patches.
const fixMarker = "aos-animate"

// aosStyleFix keeps animated elements visible when the animation library
// fails to load or initialize.
const aosStyleFix = `
    <style>
        /* AOS Visibility Fallback */
        [data-aos] {
            opacity: 1 !important;
            transform: none !important;
        }
        .aos-init [data-aos] {
            opacity: 0;
            transform: translateY(20px);
        }
        .aos-init .aos-animate {
            opacity: 1 !important;
            transform: none !important;
        }
    </style>
`

// aosScriptFix initializes icons and animations on load and force-reveals
// every animated element after a second as a last resort.
const aosScriptFix = `
    <script>
        window.addEventListener('load', function() {
            if (typeof lucide !== 'undefined') lucide.createIcons();
            if (typeof AOS !== 'undefined') {
                AOS.init({ duration: 800, once: true, offset: 50 });
            }
            setTimeout(function() {
                document.querySelectorAll('[data-aos]').forEach(function(el) {
                    el.classList.add('aos-animate');
                });
            }, 1000);
        });
    </script>
`

// ApplyFixes injects the visibility style block before </head> and the
// initialization script before </body>. Pages that already carry the patches
// are returned unchanged, so calling this twice never duplicates blocks.
func ApplyFixes(html string) string {
	if strings.Contains(strings.ToLower(html), fixMarker) {
		return html
	}

	if strings.Contains(html, "</head>") {
		html = strings.Replace(html, "</head>", aosStyleFix+"\n</head>", 1)
	}
	if strings.Contains(html, "</body>") {
		html = strings.Replace(html, "</body>", aosScriptFix+"\n</body>", 1)
	}

	return html
}
