package cmd

import (
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mapdoc/internal/bundle"
	"mapdoc/internal/pipeline"
	"mapdoc/internal/report"

	gomponents "maragu.dev/gomponents"
	html "maragu.dev/gomponents/html"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the upload UI: POST a mapping export, download the bundle",
	RunE: func(cmd *cobra.Command, args []string) error {
		r := chi.NewRouter()
		r.Use(middleware.Logger)
		r.Use(middleware.Recoverer)
		r.Get("/", handleIndex)
		r.Post("/process", handleProcess)

		fmt.Printf("Listening on %s\n", serveAddr)
		return http.ListenAndServe(serveAddr, r)
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Listen address")
}

func renderHTML(w http.ResponseWriter, status int, node gomponents.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := node.Render(w); err != nil {
		log.Printf("render failed: %v", err)
	}
}

func handleIndex(w http.ResponseWriter, r *http.Request) {
	brand := getBrand()
	accent := report.ParseHexColor(brand.Hex)
	page := html.HTML(
		html.Head(
			html.TitleEl(gomponents.Text("mapdoc — mapping converter")),
			html.StyleEl(gomponents.Raw(`body{font-family:sans-serif;margin:2rem auto;max-width:40rem}
header{color:#fff;padding:1rem 1.5rem;border-radius:4px}
label{display:block;margin-top:.8rem}input,select{width:100%;padding:.4rem}
button{margin-top:1.2rem;padding:.5rem 1.5rem}`)),
		),
		html.Body(
			html.Header(
				html.StyleAttr("background:"+accent.CSS()),
				html.H1(gomponents.Text(brand.Name)),
				html.P(gomponents.Text(brand.Tagline)),
			),
			html.H2(gomponents.Text("Informatica XML → Tables / DDL / Report")),
			html.Form(
				html.Method("post"), html.Action("/process"), html.EncType("multipart/form-data"),
				html.Label(gomponents.Text("Mapping export (XML)"), html.Input(html.Type("file"), html.Name("xml_file"), html.Required())),
				html.Label(gomponents.Text("Brand name"), html.Input(html.Type("text"), html.Name("brand_name"), html.Value(brand.Name))),
				html.Label(gomponents.Text("Brand tagline"), html.Input(html.Type("text"), html.Name("brand_tagline"), html.Value(brand.Tagline))),
				html.Label(gomponents.Text("Accent color"), html.Input(html.Type("text"), html.Name("brand_hex"), html.Value(brand.Hex))),
				html.Label(gomponents.Text("Dialect"), dialectSelect(viper.GetString("output.dialect"))),
				html.Button(gomponents.Text("Convert")),
			),
		),
	)
	renderHTML(w, http.StatusOK, page)
}

func dialectSelect(selected string) gomponents.Node {
	opts := []gomponents.Node{html.Name("dialect")}
	for _, name := range []string{"oracle", "sqlserver", "postgres", "mysql", "snowflake"} {
		attrs := []gomponents.Node{html.Value(name), gomponents.Text(name)}
		if name == selected {
			attrs = append(attrs, html.Selected())
		}
		opts = append(opts, html.Option(attrs...))
	}
	return html.Select(opts...)
}

func formValue(r *http.Request, key, fallback string) string {
	if v := r.FormValue(key); v != "" {
		return v
	}
	return fallback
}

func handleProcess(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		http.Error(w, "bad upload: "+err.Error(), http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("xml_file")
	if err != nil {
		http.Error(w, "xml_file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "failed to read upload", http.StatusBadRequest)
		return
	}

	cfg := getBrand()
	res := pipeline.Run(data, pipeline.Options{
		Dialect: formValue(r, "dialect", viper.GetString("output.dialect")),
		Brand: report.Brand{
			Name:    formValue(r, "brand_name", cfg.Name),
			Tagline: formValue(r, "brand_tagline", cfg.Tagline),
			Hex:     formValue(r, "brand_hex", cfg.Hex),
		},
	})

	base := bundle.BaseName(header.Filename)
	zipBytes, err := bundle.Build(base, res.Tables.Sheets(), res.DDL, res.Summary)
	if err != nil {
		http.Error(w, "failed to build bundle", http.StatusInternalServerError)
		return
	}

	id := uuid.NewString()
	log.Printf("conversion %s: file=%s target=%s lineage=%d", id, header.Filename, res.Meta.TargetName, len(res.Tables.Lineage))

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", base+".zip"))
	w.Write(zipBytes)
}
