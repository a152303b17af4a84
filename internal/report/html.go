package report

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
)

// reportData feeds the HTML template. Image fields are bare filenames;
// the report lives in the same directory as the images.
type reportData struct {
	TotalCount     int
	GeneratedOn    string
	LanguagesImage string
	TopicsImage    string
	StarsImage     string
	TimelineImage  string
	MeanStars      float64
	MedianStars    float64
	MaxStars       float64
	HasSummary     bool
}

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>LLM-Literature Projects Analysis</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            line-height: 1.6;
            margin: 0;
            padding: 20px;
            color: #333;
        }
        .container {
            max-width: 1200px;
            margin: 0 auto;
        }
        h1, h2, h3 {
            color: #2c3e50;
        }
        .visualization {
            margin: 30px 0;
            text-align: center;
        }
        .visualization img {
            max-width: 100%;
            height: auto;
            border: 1px solid #ddd;
            border-radius: 4px;
            padding: 5px;
        }
        .stats {
            background-color: #f9f9f9;
            border-radius: 5px;
            padding: 15px;
            margin: 20px 0;
        }
        .footer {
            margin-top: 50px;
            text-align: center;
            font-size: 0.9em;
            color: #7f8c8d;
        }
    </style>
</head>
<body>
    <div class="container">
        <h1>LLM-Literature Projects Analysis</h1>
        <p>This report provides an analysis of GitHub repositories at the intersection of Large Language Models and Literature.</p>

        <div class="stats">
            <h2>Key Statistics</h2>
            <p><strong>Total Repositories Analyzed:</strong> {{.TotalCount}}</p>
{{- if .HasSummary}}
            <p><strong>Stars:</strong> mean {{.MeanStars}}, median {{.MedianStars}}, max {{.MaxStars}}</p>
{{- end}}
        </div>

        <div class="visualization">
            <h2>Programming Languages</h2>
            <p>Distribution of programming languages used in LLM-Literature projects.</p>
            <img src="{{.LanguagesImage}}" alt="Programming Languages Distribution">
        </div>

        <div class="visualization">
            <h2>Popular Topics</h2>
            <p>Most common topics and tags in the repositories.</p>
            <img src="{{.TopicsImage}}" alt="Popular Topics">
        </div>

        <div class="visualization">
            <h2>Stars Distribution</h2>
            <p>How repository popularity (by stars) is distributed.</p>
            <img src="{{.StarsImage}}" alt="Stars Distribution">
        </div>

        <div class="visualization">
            <h2>Creation Timeline</h2>
            <p>When repositories in this space were created over time.</p>
            <img src="{{.TimelineImage}}" alt="Creation Timeline">
        </div>

        <div class="footer">
            <p>Generated by LLM Literature Explorer on {{.GeneratedOn}}</p>
        </div>
    </div>
</body>
</html>
`))

// CreateHTMLReport renders the four charts and composes the HTML
// document embedding them. It returns the report path and the image
// paths. The HTML is not attempted when any chart fails.
func (r *Renderer) CreateHTMLReport(filename string) (string, []string, error) {
	imagePaths, err := r.VisualizeAll()
	if err != nil {
		return "", nil, err
	}

	data := reportData{
		TotalCount:     r.analysis.TotalCount,
		GeneratedOn:    r.now().Format("2006-01-02"),
		LanguagesImage: LanguagesImage,
		TopicsImage:    TopicsImage,
		StarsImage:     StarsImage,
		TimelineImage:  TimelineImage,
	}
	if s := r.analysis.StarsSummary; s != nil {
		data.HasSummary = true
		data.MeanStars = s.Mean
		data.MedianStars = s.Median
		data.MaxStars = s.Max
	}

	path := filepath.Join(r.outputDir, filename)
	f, err := os.Create(path)
	if err != nil {
		return "", nil, fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()
	if err := reportTemplate.Execute(f, data); err != nil {
		return "", nil, fmt.Errorf("failed to render report: %w", err)
	}
	return path, imagePaths, nil
}
