package surface

// pageTemplate relays signals to the iframe in the postMessage dialects of
// YouTube, Vimeo and generic players.
const pageTemplate = `<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>{{ .Title }}</title>
<style>
  html, body { margin: 0; height: 100%; background: #000; }
  iframe { border: 0; width: 100%; height: 100%; }
</style>
</head>
<body>
<iframe id="surface" src="{{ .EmbedURL }}" allow="autoplay; fullscreen; encrypted-media" allowfullscreen></iframe>
<script>
  const frame = document.getElementById("surface");
  const dialects = {
    play: [{event: "command", func: "playVideo", args: []}, {method: "play"}, {type: "play"}],
    pause: [{event: "command", func: "pauseVideo", args: []}, {method: "pause"}, {type: "pause"}],
  };

  function connect() {
    const scheme = location.protocol === "https:" ? "wss://" : "ws://";
    const ws = new WebSocket(scheme + location.host + "/signal");
    ws.onmessage = (m) => {
      const msg = JSON.parse(m.data);
      if (msg.type !== "signal" || !dialects[msg.signal]) return;
      for (const d of dialects[msg.signal]) frame.contentWindow.postMessage(JSON.stringify(d), "*");
    };
    ws.onclose = (e) => { if (e.code !== 1001) setTimeout(connect, 1000); };
  }

  connect();
</script>
</body>
</html>
`
