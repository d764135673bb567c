package html

// PollScript refreshes every [data-metric] element from the JSON endpoint
// named by the nearest [data-poll] container. Keys are dotted paths into the
// response, e.g. "dashboard.activeProjects".
func PollScript() string {
	return `<script>
(function () {
  var root = document.querySelector("[data-poll]");
  if (!root) return;
  var url = root.getAttribute("data-poll");
  var every = parseInt(root.getAttribute("data-interval") || "5000", 10);

  function lookup(obj, path) {
    var parts = path.split(".");
    for (var i = 0; i < parts.length && obj != null; i++) obj = obj[parts[i]];
    return obj;
  }

  function refresh() {
    fetch(url, { credentials: "same-origin", headers: { Accept: "application/json" } })
      .then(function (res) { return res.ok ? res.json() : null; })
      .then(function (data) {
        if (!data) return;
        var nodes = document.querySelectorAll("[data-metric]");
        for (var i = 0; i < nodes.length; i++) {
          var v = lookup(data, nodes[i].getAttribute("data-metric"));
          if (v === undefined || v === null) continue;
          var digits = nodes[i].getAttribute("data-digits");
          nodes[i].textContent = digits ? Number(v).toFixed(parseInt(digits, 10)) : String(v);
        }
      })
      .catch(function () {});
  }

  setInterval(refresh, every);
})();
</script>`
}
