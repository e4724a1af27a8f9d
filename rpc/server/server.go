// Package server provides JSON RPC service.
package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/didip/tollbooth/v6"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/gorilla/rpc/v2"
	rpcjson "github.com/gorilla/rpc/v2/json2"

	"github.com/3dpass/bridge-core/log"
	"github.com/3dpass/bridge-core/params"
	"github.com/3dpass/bridge-core/rpc/restapi"
	"github.com/3dpass/bridge-core/rpc/rpcapi"
)

// StartAPIServer start api server
func StartAPIServer() {
	router := initRouter()

	apiPort := params.GetAPIPort()
	apiServer := params.GetAPIServerConfig()

	var allowedOrigins []string
	maxRequestsLimit := 10
	if apiServer != nil {
		allowedOrigins = apiServer.AllowedOrigins
		if apiServer.MaxRequestsLimit > 0 {
			maxRequestsLimit = apiServer.MaxRequestsLimit
		}
	}

	corsOptions := []handlers.CORSOption{
		handlers.AllowedMethods([]string{"GET", "POST"}),
	}
	if len(allowedOrigins) != 0 {
		corsOptions = append(corsOptions,
			handlers.AllowedHeaders([]string{"X-Requested-With", "Content-Type"}),
			handlers.AllowedOrigins(allowedOrigins),
		)
	}

	limiter := tollbooth.NewLimiter(float64(maxRequestsLimit), nil)
	handler := tollbooth.LimitHandler(limiter, handlers.CORS(corsOptions...)(router))

	log.Info("JSON RPC service listen and serving", "port", apiPort,
		"allowedOrigins", allowedOrigins, "maxRequestsLimit", maxRequestsLimit)
	svr := http.Server{
		Addr:         fmt.Sprintf(":%v", apiPort),
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		Handler:      handler,
	}
	go func() {
		if err := svr.ListenAndServe(); err != nil {
			log.Error("ListenAndServe error", "err", err)
		}
	}()
}

func initRouter() *mux.Router {
	r := mux.NewRouter()

	rpcserver := rpc.NewServer()
	rpcserver.RegisterCodec(rpcjson.NewCodec(), "application/json")
	_ = rpcserver.RegisterService(new(rpcapi.RPCAPI), "bridge")

	r.Handle("/rpc", rpcserver)
	r.HandleFunc("/serverinfo", restapi.ServerInfoHandler).Methods("GET")
	r.HandleFunc("/versioninfo", restapi.VersionInfoHandler).Methods("GET")
	r.HandleFunc("/bridges", restapi.KnownBridgesHandler).Methods("GET")
	r.HandleFunc("/bridge/detect/{network}/{address}", restapi.DetectBridgeHandler).Methods("GET")
	r.HandleFunc("/bridge/info/{network}/{address}", restapi.BridgeInfoHandler).Methods("GET")
	r.HandleFunc("/bridge/claim/{address}", restapi.ClaimBridgeHandler).Methods("GET")
	r.HandleFunc("/registry/scan/{network}", restapi.ScanRegistryHandler).Methods("POST")
	r.HandleFunc("/token/{network}/{address}", restapi.ResolveTokenHandler).Methods("GET")
	r.HandleFunc("/events", restapi.EventSnapshotHandler).Methods("GET")
	r.HandleFunc("/events/transfer", restapi.PostTransferEventHandler).Methods("POST")
	r.HandleFunc("/events/claim", restapi.PostClaimEventHandler).Methods("POST")

	methodsExcluesGet := []string{"POST", "HEAD", "PUT", "DELETE", "CONNECT", "OPTIONS", "TRACE", "PATCH"}
	methodsExcluesPost := []string{"GET", "HEAD", "PUT", "DELETE", "CONNECT", "OPTIONS", "TRACE", "PATCH"}

	r.HandleFunc("/serverinfo", warnHandler).Methods(methodsExcluesGet...)
	r.HandleFunc("/versioninfo", warnHandler).Methods(methodsExcluesGet...)
	r.HandleFunc("/bridges", warnHandler).Methods(methodsExcluesGet...)
	r.HandleFunc("/bridge/detect/{network}/{address}", warnHandler).Methods(methodsExcluesGet...)
	r.HandleFunc("/bridge/info/{network}/{address}", warnHandler).Methods(methodsExcluesGet...)
	r.HandleFunc("/bridge/claim/{address}", warnHandler).Methods(methodsExcluesGet...)
	r.HandleFunc("/registry/scan/{network}", warnHandler).Methods(methodsExcluesPost...)
	r.HandleFunc("/token/{network}/{address}", warnHandler).Methods(methodsExcluesGet...)
	r.HandleFunc("/events", warnHandler).Methods(methodsExcluesGet...)
	r.HandleFunc("/events/transfer", warnHandler).Methods(methodsExcluesPost...)
	r.HandleFunc("/events/claim", warnHandler).Methods(methodsExcluesPost...)

	return r
}

func warnHandler(w http.ResponseWriter, r *http.Request) {
	fmt.Fprintf(w, "Forbid '%v' on '%v'\n", r.Method, r.RequestURI)
}
