package mapgen

import "html/template"

// pageTemplate is the whole map document. Leaflet comes from a CDN, the base
// layer is CartoDB positron and markers are circle markers so the file needs
// no icon assets.
var pageTemplate = template.Must(template.New("map").Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Monitoramento de Frota</title>
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css">
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
<style>
  html, body, #map { height: 100%; margin: 0; }
  .legend {
    position: absolute; z-index: 1000; right: 20px; bottom: 20px;
    background: rgba(255, 255, 255, 0.9); border: 2px solid grey;
    border-radius: 6px; padding: 10px; font-family: Arial, sans-serif;
    font-size: 14px; box-shadow: 2px 2px 5px rgba(0, 0, 0, 0.2);
  }
  .legend ul { list-style: none; padding: 0; margin: 5px 0 0 0; }
  .legend .dot {
    width: 12px; height: 12px; display: inline-block;
    margin-right: 5px; border-radius: 50%;
  }
  .popup { font-family: Arial, sans-serif; font-size: 12px; }
  .popup b { font-size: 14px; }
</style>
</head>
<body>
<div id="map"></div>
<div class="legend">
  <b>Monitoramento de Frota</b>
  <ul>
    <li><span class="dot" style="background: green;"></span>Em Movimento</li>
    <li><span class="dot" style="background: red;"></span>Parado</li>
  </ul>
</div>
<script>
var markers = {{.Markers}};
var map = L.map('map').setView([{{.CenterLat}}, {{.CenterLon}}], {{.Zoom}});
L.tileLayer('https://{s}.basemaps.cartocdn.com/light_all/{z}/{x}/{y}{r}.png', {
  attribution: '&copy; OpenStreetMap &copy; CARTO'
}).addTo(map);

var bounds = [];
markers.forEach(function (m) {
  var color = m.moving ? 'green' : 'red';
  var status = m.moving ? 'Em Movimento' : 'Parado';
  var popup = '<div class="popup">' +
    '<b>Placa: ' + m.plate + '</b><br>' +
    'Motorista: ' + m.driver + '<br>' +
    'Trajeto: ' + m.route + '<br>' +
    'Velocidade: ' + m.speed + ' km/h (' + status + ')<br>' +
    '<small>Atualizado: ' + m.time + '</small></div>';
  L.circleMarker([m.lat, m.lon], {
    radius: 7, color: color, fillColor: color, fillOpacity: 0.85, weight: 2
  }).bindPopup(popup).addTo(map);
  bounds.push([m.lat, m.lon]);
});

if (bounds.length > 0) {
  map.fitBounds(bounds, { padding: [30, 30] });
}
</script>
</body>
</html>
`))
