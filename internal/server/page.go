package server

const indexPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Credit Card Statement Parser</title>
<style>
body { font-family: sans-serif; max-width: 60rem; margin: 2rem auto; }
table { border-collapse: collapse; margin-top: 1rem; }
td, th { border: 1px solid #ccc; padding: 0.3rem 0.6rem; }
.error { color: #b00020; }
</style>
</head>
<body>
<h1>Credit Card Statement Parser</h1>
<p>` + UploadPrompt + `</p>
<form id="upload" method="post" action="/api/extract/csv" enctype="multipart/form-data">
  <input type="file" name="file" accept="application/pdf,.pdf" required>
  <button type="submit" formaction="/api/extract/csv">Download CSV File</button>
  <button type="button" id="preview">Preview</button>
</form>
<p id="status"></p>
<div id="result"></div>
<script>
document.getElementById("preview").addEventListener("click", async () => {
  const form = document.getElementById("upload");
  const status = document.getElementById("status");
  const result = document.getElementById("result");
  result.innerHTML = "";
  status.className = "";
  status.textContent = "Processing your PDF...";
  const resp = await fetch("/api/extract", { method: "POST", body: new FormData(form) });
  const body = await resp.json();
  if (!body.success) {
    status.className = "error";
    status.textContent = body.error;
    return;
  }
  status.textContent = body.message;
  const cols = ["cardholder_name", "last_4_digits", "statement_period", "payment_due_date", "total_amount_due", "record_number"];
  const heads = ["Cardholder Name", "Last 4 Digits", "Statement Period", "Payment Due Date", "Total Amount Due", "Record #"];
  const table = document.createElement("table");
  const head = table.insertRow();
  heads.forEach(h => { const th = document.createElement("th"); th.textContent = h; head.appendChild(th); });
  body.records.forEach(r => {
    const row = table.insertRow();
    cols.forEach(c => { row.insertCell().textContent = r[c]; });
  });
  result.appendChild(table);
});
</script>
</body>
</html>
`
