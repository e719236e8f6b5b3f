package server

import (
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"script-sheets/internal/cache"
	"script-sheets/internal/config"
	"script-sheets/internal/script"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()
	listener, err := net.Listen("tcp4", "127.0.0.1:0")
	if err != nil {
		t.Skipf("skipping test; listen unavailable: %v", err)
	}
	ts := &httptest.Server{
		Listener: listener,
		Config:   &http.Server{Handler: handler},
	}
	ts.Start()
	t.Cleanup(ts.Close)
	return ts
}

func testCatalog() *script.Catalog {
	return script.NewCatalog([]script.Character{
		{ID: "washerwoman", Name: "Washerwoman", Team: script.TeamTownsfolk, Ability: "You start knowing that 1 of 2 players is a particular Townsfolk.", FirstNight: 32, FirstNightReminder: "Show the *Townsfolk* character token."},
		{ID: "empath", Name: "Empath", Team: script.TeamTownsfolk, Ability: "Each night, you learn how many of your 2 alive neighbours are evil.", FirstNight: 37, OtherNight: 53, FirstNightReminder: "Give a finger signal.", OtherNightReminder: "Give a finger signal."},
		{ID: "drunk", Name: "Drunk", Team: script.TeamOutsider, Ability: "You do not know you are the Drunk. [-1 Townsfolk]"},
		{ID: "spy", Name: "Spy", Team: script.TeamMinion, Ability: "Each night, you see the Grimoire.", FirstNight: 49, OtherNight: 68, FirstNightReminder: "Show the Grimoire to the Spy.", OtherNightReminder: "Show the Grimoire to the Spy."},
		{ID: "imp", Name: "Imp", Team: script.TeamDemon, Ability: "Each night*, choose a player: they die.", OtherNight: 24, OtherNightReminder: "The Imp points to a player."},
	}, []script.Jinx{
		{Characters: [2]string{"spy", "empath"}, Text: "The Spy registers as good to the Empath."},
	})
}

func newTestApp(t *testing.T, cfg config.Config, renderCache cache.RenderCache) (*Server, *httptest.Server) {
	t.Helper()
	srv := New(nil, renderCache, testCatalog(), cfg)
	return srv, newTestServer(t, srv.Handler())
}

func testConfig() config.Config {
	cfg := config.Default()
	cfg.StaticDir = ""
	return cfg
}
