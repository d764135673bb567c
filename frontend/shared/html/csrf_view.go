package html

import "fmt"

// Names shared by the CSRF middleware and the form script.
const (
	CSRFCookieName = "X-CSRF-Token"
	CSRFHeaderName = "X-CSRF-Token"
	CSRFFieldName  = "_csrf"
)

// CSRFFormScript copies the CSRF cookie into a hidden field of every POST
// form at submit time, so forms rendered after load are covered too.
func CSRFFormScript() string {
	return fmt.Sprintf(`<script>
document.addEventListener("submit", function (ev) {
  var form = ev.target;
  if (!form || (form.method || "").toLowerCase() !== "post") return;
  var match = document.cookie.match(/(?:^|;\s*)%s=([^;]*)/);
  if (!match) return;
  var field = form.querySelector("input[name='%s']");
  if (!field) {
    field = document.createElement("input");
    field.type = "hidden";
    field.name = "%s";
    form.appendChild(field);
  }
  field.value = decodeURIComponent(match[1]);
}, true);
</script>`, CSRFCookieName, CSRFFieldName, CSRFFieldName)
}
