package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// ActiveProject identifies the project currently selected in the header.
type ActiveProject struct {
	ID   string
	Name string
}

// ProjectSelectorItem is one entry in the header project dropdown.
type ProjectSelectorItem struct {
	ID       string
	Name     string
	Client   string
	IsActive bool
}

// HeaderData feeds the top navigation bar.
type HeaderData struct {
	ActiveProject *ActiveProject
	Projects      []ProjectSelectorItem
}

// SidebarData feeds the left navigation: counts for the active project and
// the current path for highlighting.
type SidebarData struct {
	ActiveProject  *ActiveProject
	ActivePath     string
	QuotationCount int
	InvoiceCount   int
	ClientCount    int
}

type sidebarLink struct {
	href  string
	label string
	badge int
}

func esc(s string) string {
	return templ.EscapeString(s)
}

// Page wraps a content component in the full HTML shell: head, header bar,
// sidebar and the toast listener.
func Page(title string, header HeaderData, sidebar SidebarData, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en" data-theme="corporate">
<head>
<meta charset="utf-8"/>
<meta name="viewport" content="width=device-width, initial-scale=1"/>
<title>%s · RNS Docs</title>
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
<link href="https://cdn.jsdelivr.net/npm/daisyui@4.12.10/dist/full.min.css" rel="stylesheet"/>
<script src="https://cdn.tailwindcss.com"></script>
</head>
<body class="min-h-screen bg-base-200">`, esc(title))

		if err := headerBar(header).Render(ctx, w); err != nil {
			return err
		}

		io.WriteString(w, `<div class="flex">`)
		if err := sidebarNav(sidebar).Render(ctx, w); err != nil {
			return err
		}
		io.WriteString(w, `<main id="main-content" class="flex-1 p-6">`)
		if err := content.Render(ctx, w); err != nil {
			return err
		}
		io.WriteString(w, `</main></div>`)

		io.WriteString(w, `<div id="toast-container" class="toast toast-end"></div>
<script>
document.body.addEventListener("showToast", function(evt) {
  var d = evt.detail || {};
  var el = document.createElement("div");
  el.className = "alert alert-" + (d.type || "info");
  el.textContent = d.message || "";
  document.getElementById("toast-container").appendChild(el);
  setTimeout(function() { el.remove(); }, 4000);
});
(function() {
  var m = document.cookie.match(/(?:^|; )flash_toast=([^;]*)/);
  if (!m) return;
  document.cookie = "flash_toast=; Max-Age=0; path=/";
  try {
    var d = JSON.parse(decodeURIComponent(m[1]));
    document.body.dispatchEvent(new CustomEvent("showToast", {detail: d}));
  } catch (e) {}
})();
</script>
</body></html>`)
		return nil
	})
}

func headerBar(data HeaderData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		io.WriteString(w, `<header class="navbar bg-base-100 shadow-sm px-6">
<div class="flex-1"><a href="/" class="text-xl font-bold">RNS Docs</a></div>
<div class="flex-none">`)

		if len(data.Projects) > 0 {
			io.WriteString(w, `<div class="dropdown dropdown-end">
<label tabindex="0" class="btn btn-ghost">`)
			if data.ActiveProject != nil {
				fmt.Fprintf(w, `%s`, esc(data.ActiveProject.Name))
			} else {
				io.WriteString(w, `Select project`)
			}
			io.WriteString(w, `</label>
<ul tabindex="0" class="dropdown-content menu bg-base-100 rounded-box shadow w-64 z-10">`)
			for _, p := range data.Projects {
				active := ""
				if p.IsActive {
					active = ` class="active"`
				}
				fmt.Fprintf(w, `<li><a%s hx-post="/projects/%s/switch" hx-swap="none">%s <span class="text-xs opacity-60">%s</span></a></li>`,
					active, esc(p.ID), esc(p.Name), esc(p.Client))
			}
			io.WriteString(w, `</ul></div>`)
		}

		io.WriteString(w, `</div></header>`)
		return nil
	})
}

func sidebarNav(data SidebarData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		links := []sidebarLink{
			{"/", "Projects", 0},
			{"/clients", "Clients", data.ClientCount},
		}
		if data.ActiveProject != nil {
			links = append(links,
				sidebarLink{"/projects/" + data.ActiveProject.ID, "Overview", 0},
				sidebarLink{"/projects/" + data.ActiveProject.ID + "/quotations", "Quotations", data.QuotationCount},
				sidebarLink{"/projects/" + data.ActiveProject.ID + "/invoices", "Proforma Invoices", data.InvoiceCount},
			)
		}
		links = append(links, sidebarLink{"/settings/branding", "Branding", 0})

		io.WriteString(w, `<aside class="w-56 min-h-screen bg-base-100 shadow-sm"><ul class="menu p-4">`)
		for _, l := range links {
			active := ""
			if l.href == data.ActivePath {
				active = ` class="active"`
			}
			fmt.Fprintf(w, `<li><a href="%s"%s>%s`, esc(l.href), active, esc(l.label))
			if l.badge > 0 {
				fmt.Fprintf(w, ` <span class="badge badge-sm">%d</span>`, l.badge)
			}
			io.WriteString(w, `</a></li>`)
		}
		io.WriteString(w, `</ul></aside>`)
		return nil
	})
}
