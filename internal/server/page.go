package server

import "html/template"

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Color interpolation</title>
<style>
body { font-family: sans-serif; margin: 2em; }
#colorScale { display: flex; margin: 1em 0; }
.color-box { width: 40px; height: 40px; }
#errorMessage { color: #e05a3a; min-height: 1.2em; }
#curveEditor { width: {{.Width}}px; height: {{.Height}}px; border: 1px solid #ddd; }
</style>
</head>
<body>
<form id="controls" method="post" action="/events/generate">
  <input id="colorInput" name="color" type="text" value="{{.Color}}">
  <select id="curveType" name="curve">
  {{- range .Curves}}
    <option value="{{.Curve}}"{{if eq (printf "%s" .Curve) $.Curve}} selected{{end}}>{{.Label}}</option>
  {{- end}}
  </select>
  <button id="generateBtn" type="submit">Generate</button>
</form>
<div id="errorMessage">{{.Error}}</div>
<div id="colorScale">
{{- range .Swatches}}
  <div class="color-box" style="background-color: {{.}}"></div>
{{- end}}
</div>
<div id="colorInfo">{{.Info}}</div>
<div id="curveEditor">{{.SVG}}</div>
<script>
const form = document.getElementById("controls");
const colorInput = document.getElementById("colorInput");
const curveType = document.getElementById("curveType");

function apply(state) {
	document.getElementById("errorMessage").textContent = state.error;
	if (state.error) {
		return;
	}
	const scale = document.getElementById("colorScale");
	scale.innerHTML = "";
	for (const c of state.swatches) {
		const box = document.createElement("div");
		box.className = "color-box";
		box.style.backgroundColor = c;
		scale.appendChild(box);
	}
	document.getElementById("colorInfo").textContent = state.info;
	document.getElementById("curveEditor").innerHTML = state.plot.slice(state.plot.indexOf("<svg"));
	colorInput.value = state.color;
}

function send(event) {
	fetch("/api/events", {
		method: "POST",
		headers: { "Content-Type": "application/json" },
		body: JSON.stringify({ event: event, color: colorInput.value.trim(), curve: curveType.value }),
	}).then((r) => r.json()).then(apply);
}

colorInput.addEventListener("input", () => send("input"));
curveType.addEventListener("change", () => send("curve"));
form.addEventListener("submit", (e) => {
	e.preventDefault();
	send("click");
});
</script>
</body>
</html>
`))
