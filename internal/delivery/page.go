package delivery

import "html/template"

// single-page form, no static assets to serve
var pageTmpl = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Telugu to English Audio Translation</title>
<style>
body { font-family: sans-serif; max-width: 640px; margin: 40px auto; }
label { display: block; margin-top: 16px; }
textarea { width: 100%; height: 90px; }
audio { width: 100%; margin-top: 8px; }
#status { color: #666; }
</style>
</head>
<body>
<h2>Telugu to English Audio Translation for Audio Files</h2>
<form id="form">
  <label>Upload Audio File
    <input type="file" name="file" accept="audio/*" required>
  </label>
  <label>Whisper Model
    <select name="model">
    {{- range .Models}}
      <option value="{{.}}"{{if eq . $.Default}} selected{{end}}>{{.}}</option>
    {{- end}}
    </select>
  </label>
  <button type="submit">Process Audio</button>
</form>
<p id="status"></p>
<label>Translated English Text
  <textarea id="text" readonly></textarea>
</label>
<label>Synthesized English Speech
  <audio id="audio" controls></audio>
</label>
<script>
const form = document.getElementById("form");
form.addEventListener("submit", async (e) => {
  e.preventDefault();
  const status = document.getElementById("status");
  status.textContent = "Processing...";
  try {
    const resp = await fetch("/translate", { method: "POST", body: new FormData(form) });
    if (!resp.ok) {
      status.textContent = "Failed: " + await resp.text();
      return;
    }
    const data = await resp.json();
    document.getElementById("text").value = data.text;
    const audio = document.getElementById("audio");
    if (data.audio_url) {
      audio.src = data.audio_url;
      status.textContent = "Done";
    } else {
      audio.removeAttribute("src");
      status.textContent = "Done (no audio produced)";
    }
  } catch (err) {
    status.textContent = "Failed: " + err;
  }
});
</script>
</body>
</html>
`))
