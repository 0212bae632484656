// Package response builds HTTP responses from templates and redirects
// resolved with a uribuilder.Builder.
//
//	renderer, err := response.NewTemplateRenderer(templates, "layouts/*", "views/*")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	b := response.New(renderer, uris)
//	if err := b.Render("home.html", data); err != nil {
//	    return err
//	}
//	b.Response().Send(w)
//
// Redirect targets are resolved against the base URI and always rendered
// absolute:
//
//	resp, err := b.Redirect("../login", http.StatusFound)
package response
